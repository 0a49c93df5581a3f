// Package channel builds the two outbound channels a hosted component uses
// to talk to the page around it.
//
// A function attribute names a global callable. BindFunction returns a
// Handler that resolves the name each time it is called, so the target may
// be registered after the element is created:
//
//	channel.Window.Set("onSaved", func(this any, args ...any) { ... })
//	h := channel.BindFunction(el, nil, "onSaved")
//	h("draft", 3) // calls onSaved with this == el
//
// An event attribute turns a callback into a DOM event. BindEvent returns a
// Handler that dispatches a bubbling, composed CustomEvent on the element:
//
//	h := channel.BindEvent(el, "onChange")
//	h("next") // dispatches "change" with Detail "next"
package channel
