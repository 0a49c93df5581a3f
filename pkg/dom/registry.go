package dom

import (
	"fmt"
	"strings"
)

// CustomElement receives lifecycle reactions for an upgraded element.
type CustomElement interface {
	ConnectedCallback()
	DisconnectedCallback()
	AdoptedCallback(oldDoc, newDoc *Document)

	// AttributeChangedCallback is called for observed attributes. A nil
	// value means the attribute is absent.
	AttributeChangedCallback(name string, oldValue, newValue *string)
}

// Constructor builds the custom element instance for an element being
// upgraded.
type Constructor func(el *Element) CustomElement

type definition struct {
	name        string
	constructor Constructor
	observed    map[string]bool
}

func (d *definition) observes(name string) bool {
	return d != nil && d.observed[name]
}

func (d *definition) construct(el *Element) {
	el.def = d
	el.custom = d.constructor(el)
}

// Registry maps custom element names to constructors.
type Registry struct {
	doc  *Document
	defs map[string]*definition
}

// Define registers a custom element. Observed attribute names are matched
// against lowercased DOM attribute names. Existing elements with the name
// are upgraded in tree order: constructed, sent an attribute-changed
// reaction for each observed attribute they carry, then connected if they
// are in the document.
func (r *Registry) Define(name string, ctor Constructor, observed []string) error {
	if !ValidCustomElementName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if _, ok := r.defs[name]; ok {
		return fmt.Errorf("%w: %q", ErrAlreadyDefined, name)
	}

	def := &definition{
		name:        name,
		constructor: ctor,
		observed:    make(map[string]bool, len(observed)),
	}
	for _, attr := range observed {
		def.observed[strings.ToLower(attr)] = true
	}
	r.defs[name] = def

	var pending []*Element
	r.doc.Walk(func(el *Element) bool {
		if el.tag == name && el.custom == nil {
			pending = append(pending, el)
		}
		return true
	})
	for _, el := range pending {
		r.upgrade(el, def)
	}
	return nil
}

// Upgrade upgrades a detached element created before its name was defined.
func (r *Registry) Upgrade(el *Element) {
	if el.custom != nil {
		return
	}
	if def, ok := r.defs[el.tag]; ok {
		r.upgrade(el, def)
	}
}

func (r *Registry) upgrade(el *Element, def *definition) {
	def.construct(el)
	for _, a := range el.Attributes() {
		if def.observes(a.Name) {
			v := a.Value
			el.custom.AttributeChangedCallback(a.Name, nil, &v)
		}
	}
	if el.IsConnected() {
		el.custom.ConnectedCallback()
	}
}

// IsDefined reports whether name has a definition.
func (r *Registry) IsDefined(name string) bool {
	_, ok := r.defs[name]
	return ok
}

// Names returns the defined names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	return names
}

var reservedNames = map[string]bool{
	"annotation-xml":   true,
	"color-profile":    true,
	"font-face":        true,
	"font-face-src":    true,
	"font-face-uri":    true,
	"font-face-format": true,
	"font-face-name":   true,
	"missing-glyph":    true,
}

// ValidCustomElementName reports whether name is a valid custom element
// name: it starts with a lowercase ASCII letter, contains a hyphen, has no
// uppercase ASCII letters and is not one of the reserved SVG/MathML names.
func ValidCustomElementName(name string) bool {
	if name == "" || name[0] < 'a' || name[0] > 'z' {
		return false
	}
	if !strings.Contains(name, "-") || reservedNames[name] {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			return false
		case r == '-' || r == '.' || r == '_' || r == 0xB7:
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r >= 0xC0:
			// PCENChar permits most non-ASCII code points.
		default:
			return false
		}
	}
	return true
}
