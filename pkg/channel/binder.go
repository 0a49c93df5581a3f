package channel

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vango-dev/wcbridge/pkg/dom"
)

// Handler is the callable stored in a component's properties for function
// and event attributes.
type Handler func(args ...any)

// EventTarget receives dispatched events.
type EventTarget interface {
	DispatchEvent(ev *dom.CustomEvent)
}

// BindFunction returns a Handler that looks name up in scope on every call
// and invokes it with receiver as this. A nil scope means DefaultScope. When
// the name is missing or not callable the call does nothing.
func BindFunction(receiver any, scope Scope, name string) Handler {
	if scope == nil {
		scope = DefaultScope()
	}
	return func(args ...any) {
		v, ok := scope.Lookup(name)
		if !ok {
			return
		}
		fn, ok := callable(v)
		if !ok {
			return
		}
		fn(receiver, args...)
	}
}

// EventName derives the event type for an event attribute: a leading "on"
// is stripped and the next character lowercased, otherwise the attribute
// name is used as is.
func EventName(attr string) string {
	rest, ok := strings.CutPrefix(attr, "on")
	if !ok {
		return attr
	}
	r, size := utf8.DecodeRuneInString(rest)
	if size == 0 {
		return rest
	}
	return string(unicode.ToLower(r)) + rest[size:]
}

// BindEvent returns a Handler dispatching a bubbling, composed CustomEvent
// named after attr on target. A single argument becomes the event detail;
// any other count sends the ordered argument slice.
func BindEvent(target EventTarget, attr string) Handler {
	name := EventName(attr)
	return func(args ...any) {
		var detail any
		if len(args) == 1 {
			detail = args[0]
		} else {
			detail = append([]any{}, args...)
		}
		target.DispatchEvent(dom.NewCustomEvent(name, dom.CustomEventInit{
			Detail:   detail,
			Bubbles:  true,
			Composed: true,
		}))
	}
}
