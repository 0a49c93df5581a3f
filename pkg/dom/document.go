package dom

import "strings"

// Document owns a tree of elements rooted at <html> with a <body>, and the
// custom element registry for that tree.
type Document struct {
	root      *Element
	body      *Element
	registry  *Registry
	listeners listenerSet
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	d := &Document{}
	d.registry = &Registry{doc: d, defs: make(map[string]*definition)}
	d.root = &Element{tag: "html", doc: d}
	d.body = &Element{tag: "body", doc: d, parent: d.root}
	d.root.children = []*Element{d.body}
	return d
}

// Registry returns the document's custom element registry.
func (d *Document) Registry() *Registry { return d.registry }

// DocumentElement returns the <html> element.
func (d *Document) DocumentElement() *Element { return d.root }

// Body returns the <body> element.
func (d *Document) Body() *Element { return d.body }

// CreateElement creates a detached element. If the name is defined in the
// registry the element is constructed as a custom element immediately.
func (d *Document) CreateElement(tag string) *Element {
	el := &Element{tag: strings.ToLower(tag), doc: d}
	if def, ok := d.registry.defs[el.tag]; ok {
		def.construct(el)
	}
	return el
}

// AdoptNode moves el, with its subtree, into d. The element is removed from
// its current parent first.
func (d *Document) AdoptNode(el *Element) {
	el.detach()
	d.adopt(el)
}

func (d *Document) adopt(el *Element) {
	old := el.doc
	if old == d {
		return
	}
	var adopted []*Element
	el.Walk(func(n *Element) bool {
		n.doc = d
		if n.custom != nil {
			adopted = append(adopted, n)
		}
		return true
	})
	for _, n := range adopted {
		n.custom.AdoptedCallback(old, d)
	}
}

// AddEventListener registers a document-level listener for events that
// bubble out of the tree. It returns a function removing the listener.
func (d *Document) AddEventListener(typ string, fn Listener) func() {
	return d.listeners.add(typ, fn)
}

// Walk visits every element of the document, shadow-including, in tree order.
func (d *Document) Walk(fn func(*Element) bool) {
	d.root.Walk(fn)
}

// connect runs connected reactions for el and its shadow-including
// descendants.
func connect(el *Element) {
	for _, n := range upgraded(el) {
		n.custom.ConnectedCallback()
	}
}

func disconnect(el *Element) {
	for _, n := range upgraded(el) {
		n.custom.DisconnectedCallback()
	}
}

func upgraded(el *Element) []*Element {
	var out []*Element
	el.Walk(func(n *Element) bool {
		if n.custom != nil {
			out = append(out, n)
		}
		return true
	})
	return out
}
