package theme

import (
	"github.com/vango-dev/wcbridge/pkg/element"
	"github.com/vango-dev/wcbridge/pkg/vdom"
)

// HostStyle resets inherited styles on the shadow host.
const HostStyle = ":host{all:initial;display:inline-block}"

// Wrapper is an element.Wrapper applying the theme named by the element's
// theme attribute.
func Wrapper(p element.WrapperProps) *vdom.VNode {
	return Wrap(Resolve(p.Theme), p.Component)
}

// WrapperFor returns a wrapper that always applies t, ignoring the theme
// attribute.
func WrapperFor(t Theme) element.Wrapper {
	return func(p element.WrapperProps) *vdom.VNode {
		return Wrap(t, p.Component)
	}
}

// Wrap surrounds component with the host reset style, the theme
// stylesheet and a container carrying the theme name.
func Wrap(t Theme, component *vdom.VNode) *vdom.VNode {
	return vdom.Fragment(
		vdom.Style(HostStyle, vdom.Data("injected", "true")),
		vdom.Style(t.CSS(), vdom.Data("theme", t.Name)),
		vdom.Div(
			vdom.Data("theme", t.Name),
			vdom.StyleAttr("color:var(--wc-palette-on-background);background:var(--wc-palette-background)"),
			component,
		),
	)
}
