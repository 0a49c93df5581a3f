package demo

import (
	"fmt"
	"sort"

	"github.com/vango-dev/wcbridge/pkg/channel"
	"github.com/vango-dev/wcbridge/pkg/dom"
	"github.com/vango-dev/wcbridge/pkg/element"
	"github.com/vango-dev/wcbridge/pkg/vdom"
)

// Counter shows a labelled count. Attributes: count, label, step;
// onChange receives the next value when the increment button is pressed.
func Counter(props element.Props, _ *dom.ShadowRoot) *vdom.VNode {
	count := number(props["count"])
	step := number(props["step"])
	if step == 0 {
		step = 1
	}
	label, _ := props["label"].(string)
	if label == "" {
		label = "Count"
	}

	var onClick func()
	if h, ok := props["onChange"].(channel.Handler); ok {
		onClick = func() { h(count + step) }
	}

	return vdom.Div(vdom.Part("counter"),
		vdom.Span(vdom.Class("label"), label),
		vdom.Strong(vdom.Textf("%g", count)),
		vdom.Button(vdom.On("click", onClick), vdom.Textf("+%g", step)),
	)
}

// Greeting greets name, or the world when name is unset.
func Greeting(props element.Props, _ *dom.ShadowRoot) *vdom.VNode {
	name := "world"
	if v, ok := props["name"]; ok && v != nil && v != "" {
		name = fmt.Sprint(v)
	}
	return vdom.P(vdom.Part("greeting"), vdom.Textf("Hello, %s!", name))
}

// Profile lists the fields of the user object attribute.
func Profile(props element.Props, _ *dom.ShadowRoot) *vdom.VNode {
	user, ok := props["user"].(map[string]any)
	if !ok {
		return vdom.P(vdom.Class("empty"), "No profile")
	}
	keys := make([]string, 0, len(user))
	for k := range user {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	items := make([]*vdom.VNode, 0, len(keys))
	for _, k := range keys {
		items = append(items, vdom.Li(vdom.Key(k),
			vdom.Strong(k), vdom.Textf(": %v", user[k]),
		))
	}
	return vdom.Ul(vdom.Part("profile"), items)
}

func number(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}
