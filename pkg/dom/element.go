package dom

import "strings"

// Attr is a single attribute. Names are stored lowercased.
type Attr struct {
	Name  string
	Value string
}

// Element is a DOM element.
type Element struct {
	tag   string
	doc   *Document
	attrs []Attr

	parent       *Element
	shadowParent *ShadowRoot
	children     []*Element
	shadow       *ShadowRoot

	listeners listenerSet

	def    *definition
	custom CustomElement
}

// TagName returns the lowercased local name.
func (e *Element) TagName() string { return e.tag }

// OwnerDocument returns the document the element belongs to.
func (e *Element) OwnerDocument() *Document { return e.doc }

// CustomElement returns the upgraded custom element instance, or nil if
// the element has not been upgraded.
func (e *Element) CustomElement() CustomElement { return e.custom }

// AttributeNames returns attribute names in insertion order.
func (e *Element) AttributeNames() []string {
	names := make([]string, len(e.attrs))
	for i, a := range e.attrs {
		names[i] = a.Name
	}
	return names
}

// Attributes returns a copy of the attribute list.
func (e *Element) Attributes() []Attr {
	return append([]Attr(nil), e.attrs...)
}

// GetAttribute returns the attribute value and whether it is present.
func (e *Element) GetAttribute(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttribute reports whether the attribute is present.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.GetAttribute(name)
	return ok
}

// SetAttribute sets an attribute, folding the name to lowercase as HTML
// documents do. Observed attributes of upgraded elements trigger an
// attribute-changed reaction, even when the value is unchanged.
func (e *Element) SetAttribute(name, value string) {
	name = strings.ToLower(name)
	var old *string
	found := false
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			prev := e.attrs[i].Value
			old = &prev
			e.attrs[i].Value = value
			found = true
			break
		}
	}
	if !found {
		e.attrs = append(e.attrs, Attr{Name: name, Value: value})
	}
	e.attributeChanged(name, old, &value)
}

// RemoveAttribute removes an attribute if present.
func (e *Element) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	for i, a := range e.attrs {
		if a.Name == name {
			old := a.Value
			e.attrs = append(e.attrs[:i:i], e.attrs[i+1:]...)
			e.attributeChanged(name, &old, nil)
			return
		}
	}
}

func (e *Element) attributeChanged(name string, old, value *string) {
	if e.custom == nil || !e.def.observes(name) {
		return
	}
	e.custom.AttributeChangedCallback(name, old, value)
}

// AttachShadow attaches a shadow root. An element hosts at most one.
func (e *Element) AttachShadow(mode ShadowMode) (*ShadowRoot, error) {
	if e.shadow != nil {
		return nil, ErrShadowAttached
	}
	e.shadow = &ShadowRoot{host: e, mode: mode}
	return e.shadow, nil
}

// ShadowRoot returns the element's open shadow root, or nil.
func (e *Element) ShadowRoot() *ShadowRoot {
	if e.shadow == nil || e.shadow.mode != ShadowOpen {
		return nil
	}
	return e.shadow
}

// Parent returns the parent element, or nil for roots and direct children
// of a shadow root.
func (e *Element) Parent() *Element { return e.parent }

// Children returns a copy of the child list.
func (e *Element) Children() []*Element {
	return append([]*Element(nil), e.children...)
}

// AppendChild inserts child as the last child of e, moving it if it is
// already in a tree.
func (e *Element) AppendChild(child *Element) error {
	if child == e || child.isShadowIncludingAncestorOf(e) {
		return ErrHierarchy
	}
	child.detach()
	if child.doc != e.doc {
		e.doc.adopt(child)
	}
	child.parent = e
	e.children = append(e.children, child)
	if child.IsConnected() {
		connect(child)
	}
	return nil
}

// RemoveChild removes child from e. It is a no-op if child is not a child of e.
func (e *Element) RemoveChild(child *Element) {
	if child.parent != e {
		return
	}
	child.detach()
}

// Remove removes the element from its parent, if any.
func (e *Element) Remove() {
	e.detach()
}

// detach unlinks the element and runs disconnected reactions if it left
// the document.
func (e *Element) detach() {
	wasConnected := e.IsConnected()
	switch {
	case e.parent != nil:
		e.parent.children = removeElement(e.parent.children, e)
		e.parent = nil
	case e.shadowParent != nil:
		e.shadowParent.children = removeElement(e.shadowParent.children, e)
		e.shadowParent = nil
	default:
		return
	}
	if wasConnected {
		disconnect(e)
	}
}

// IsConnected reports whether the element is in its document, including
// through shadow hosts.
func (e *Element) IsConnected() bool {
	node := e
	for node != nil {
		if node.doc != nil && node == node.doc.root {
			return true
		}
		switch {
		case node.parent != nil:
			node = node.parent
		case node.shadowParent != nil:
			node = node.shadowParent.host
		default:
			return false
		}
	}
	return false
}

func (e *Element) isShadowIncludingAncestorOf(other *Element) bool {
	for node := other; node != nil; {
		if node == e {
			return true
		}
		switch {
		case node.parent != nil:
			node = node.parent
		case node.shadowParent != nil:
			node = node.shadowParent.host
		default:
			node = nil
		}
	}
	return false
}

// AddEventListener registers a listener and returns a function removing it.
func (e *Element) AddEventListener(typ string, fn Listener) func() {
	return e.listeners.add(typ, fn)
}

// DispatchEvent dispatches ev with e as its target. Non-bubbling events
// only reach listeners on e itself; non-composed events stop at the
// enclosing shadow root.
func (e *Element) DispatchEvent(ev *CustomEvent) {
	path := eventPath(e, ev.Composed)
	if !ev.Bubbles {
		path = path[:1]
	}
	for _, p := range path {
		if ev.stopped {
			return
		}
		ev.Target = p.target
		p.listeners.invoke(ev)
	}
}

// Walk visits e and its shadow-including descendants in tree order until
// fn returns false.
func (e *Element) Walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	if e.shadow != nil {
		for _, c := range e.shadow.Children() {
			if !c.Walk(fn) {
				return false
			}
		}
	}
	for _, c := range e.Children() {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

func removeElement(list []*Element, el *Element) []*Element {
	for i, c := range list {
		if c == el {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}
