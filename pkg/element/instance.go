package element

import (
	"time"

	"github.com/vango-dev/wcbridge/pkg/channel"
	"github.com/vango-dev/wcbridge/pkg/dom"
	"github.com/vango-dev/wcbridge/pkg/vdom"
)

// State is the lifecycle state of an instance.
type State uint8

const (
	StateUnattached State = iota
	StateConnected
	StateDisconnected
)

// String returns the string representation of the State.
func (s State) String() string {
	switch s {
	case StateUnattached:
		return "unattached"
	case StateConnected:
		return "connected"
	case StateDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// Instance is one custom element. It owns its rendering boundary, its
// render root and its property set; nothing is shared between instances.
type Instance struct {
	def      *Definition
	el       *dom.Element
	boundary *dom.ShadowRoot
	root     Root

	state State
	props Props
	theme string
}

func (d *Definition) construct(el *dom.Element) *Instance {
	in := &Instance{def: d, el: el, props: Props{}}
	boundary, err := el.AttachShadow(dom.ShadowOpen)
	if err != nil {
		d.logger.Debug("rendering boundary unavailable, renders will be skipped", "error", err)
	} else {
		in.boundary = boundary
	}
	return in
}

// ConnectedCallback implements dom.CustomElement.
func (in *Instance) ConnectedCallback() { in.connect() }

// DisconnectedCallback implements dom.CustomElement.
func (in *Instance) DisconnectedCallback() { in.disconnect() }

// AdoptedCallback implements dom.CustomElement.
func (in *Instance) AdoptedCallback(_, _ *dom.Document) { in.adopt() }

// AttributeChangedCallback implements dom.CustomElement.
func (in *Instance) AttributeChangedCallback(name string, oldValue, newValue *string) {
	in.attributeChanged(name, oldValue, newValue)
}

func (in *Instance) connect() {
	in.props = in.def.mapper.MapAttributes(in.el)
	in.theme, _ = in.el.GetAttribute(ThemeAttribute)
	in.transition(StateConnected)
	in.render()
}

func (in *Instance) attributeChanged(name string, oldValue, newValue *string) {
	if in.state != StateConnected || sameValue(oldValue, newValue) {
		return
	}
	in.props = in.def.mapper.MapAttributes(in.el)
	if name == ThemeAttribute {
		in.theme = ""
		if newValue != nil {
			in.theme = *newValue
		}
	}
	in.render()
}

func (in *Instance) disconnect() {
	if in.root != nil {
		in.root.Unmount()
		in.root = nil
	}
	in.transition(StateDisconnected)
}

func (in *Instance) adopt() {
	in.def.logger.Info("custom element adopted into new document")
}

func (in *Instance) transition(to State) {
	from := in.state
	in.state = to
	in.def.observer.Transition(in.def.tag, from, to)
}

// render hands the wrapped component to the root, creating the root on
// first use. Without a rendering boundary it does nothing.
func (in *Instance) render() {
	if in.boundary == nil {
		return
	}
	if in.root == nil {
		in.root = in.def.createRoot(in.boundary)
	}

	start := time.Now()
	wp := WrapperProps{
		RenderTarget: in.boundary,
		Theme:        in.theme,
		Properties:   in.props,
		Component:    in.def.render(in.props, in.boundary),
	}
	wrapper := in.def.wrapper
	in.root.Render(vdom.Comp(vdom.Func(func() *vdom.VNode { return wrapper(wp) })))
	in.def.observer.Rendered(in.def.tag, time.Since(start))
}

func sameValue(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Element returns the host element.
func (in *Instance) Element() *dom.Element { return in.el }

// Definition returns the instance's definition.
func (in *Instance) Definition() *Definition { return in.def }

// State returns the lifecycle state.
func (in *Instance) State() State { return in.state }

// Props returns the current property set. The map is replaced, never
// modified, on re-map, so a returned value is a stable snapshot.
func (in *Instance) Props() Props { return in.props }

// Theme returns the tracked theme, empty when unset.
func (in *Instance) Theme() string { return in.theme }

// Boundary returns the rendering boundary, or nil if none could be attached.
func (in *Instance) Boundary() *dom.ShadowRoot { return in.boundary }

// Root returns the active render root, or nil when not rendered or
// disconnected.
func (in *Instance) Root() Root { return in.root }

// Handler returns the channel handler stored under a property name.
func (in *Instance) Handler(prop string) (channel.Handler, bool) {
	h, ok := in.props[prop].(channel.Handler)
	return h, ok && h != nil
}

// InstanceOf returns the Instance upgraded onto el, if el is one of ours.
func InstanceOf(el *dom.Element) (*Instance, bool) {
	in, ok := el.CustomElement().(*Instance)
	return in, ok
}
