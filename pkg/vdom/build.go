package vdom

import (
	"fmt"
	"strings"
)

// Attr is a single attribute passed to an element constructor.
type Attr struct {
	Key   string
	Value any
}

// A creates an attribute.
func A(key string, value any) Attr { return Attr{Key: key, Value: value} }

// ID sets the id attribute.
func ID(id string) Attr { return A("id", id) }

// Class sets the class attribute, joining classes with spaces.
func Class(classes ...string) Attr { return A("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute.
func StyleAttr(style string) Attr { return A("style", style) }

// Data creates a data-* attribute.
func Data(key string, value any) Attr { return A("data-"+key, value) }

// Part sets the part attribute, exposing the node to ::part() selectors.
func Part(names ...string) Attr { return A("part", strings.Join(names, " ")) }

// Key sets the reconciliation key.
func Key(key string) Attr { return A("key", key) }

// On attaches a handler for the named DOM event ("click" -> "onclick").
func On(event string, handler any) Attr { return A("on"+event, handler) }

// El creates an element. Arguments may be Attr, Props, *VNode, []*VNode
// or string (a text child); nil values are skipped.
func El(tag string, args ...any) *VNode {
	n := &VNode{Kind: KindElement, Tag: tag}
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
		case Attr:
			n.setProp(v.Key, v.Value)
		case Props:
			for k, val := range v {
				n.setProp(k, val)
			}
		case *VNode:
			if v != nil {
				n.Children = append(n.Children, v)
			}
		case []*VNode:
			for _, c := range v {
				if c != nil {
					n.Children = append(n.Children, c)
				}
			}
		case string:
			n.Children = append(n.Children, Text(v))
		default:
			panic(fmt.Sprintf("vdom: unsupported argument %T for <%s>", arg, tag))
		}
	}
	return n
}

func (n *VNode) setProp(key string, value any) {
	if key == "key" {
		n.Key = fmt.Sprint(value)
		return
	}
	if n.Props == nil {
		n.Props = make(Props)
	}
	n.Props[key] = value
}

// Text creates a text node.
func Text(s string) *VNode { return &VNode{Kind: KindText, Text: s} }

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode { return Text(fmt.Sprintf(format, args...)) }

// Raw creates a node whose text is emitted without escaping.
func Raw(html string) *VNode { return &VNode{Kind: KindRaw, Text: html} }

// Fragment groups children without a wrapper element.
func Fragment(children ...*VNode) *VNode {
	n := &VNode{Kind: KindFragment}
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Comp creates a component node.
func Comp(c Component) *VNode { return &VNode{Kind: KindComponent, Comp: c} }

func Div(args ...any) *VNode    { return El("div", args...) }
func Span(args ...any) *VNode   { return El("span", args...) }
func P(args ...any) *VNode      { return El("p", args...) }
func H1(args ...any) *VNode     { return El("h1", args...) }
func H2(args ...any) *VNode     { return El("h2", args...) }
func Button(args ...any) *VNode { return El("button", args...) }
func Input(args ...any) *VNode  { return El("input", args...) }
func Label(args ...any) *VNode  { return El("label", args...) }
func Ul(args ...any) *VNode     { return El("ul", args...) }
func Li(args ...any) *VNode     { return El("li", args...) }
func Strong(args ...any) *VNode { return El("strong", args...) }
func Slot(args ...any) *VNode   { return El("slot", args...) }

// Style creates a <style> element with raw CSS content.
func Style(css string, args ...any) *VNode {
	n := El("style", args...)
	n.Children = append(n.Children, Raw(css))
	return n
}
