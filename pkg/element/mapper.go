package element

import (
	"github.com/vango-dev/wcbridge/pkg/channel"
	"github.com/vango-dev/wcbridge/pkg/coerce"
	"github.com/vango-dev/wcbridge/pkg/dom"
)

// Props is the property set handed to a component. It is rebuilt in full
// on every qualifying change and never modified after it is built.
type Props map[string]any

// Mapper computes a component's properties from an element's attributes.
type Mapper interface {
	MapAttributes(el *dom.Element) Props
}

// MapperFunc adapts a function to Mapper.
type MapperFunc func(el *dom.Element) Props

// MapAttributes implements Mapper.
func (f MapperFunc) MapAttributes(el *dom.Element) Props { return f(el) }

// DefaultMapper maps declared attributes by kind and ignores the rest.
type DefaultMapper struct {
	index *Index
	scope channel.Scope
}

// NewMapper creates the default mapper. A nil scope resolves function
// attributes against channel.DefaultScope.
func NewMapper(decls Declarations, scope channel.Scope) *DefaultMapper {
	if scope == nil {
		scope = channel.DefaultScope()
	}
	return &DefaultMapper{index: decls.Index(), scope: scope}
}

// MapAttributes implements Mapper.
func (m *DefaultMapper) MapAttributes(el *dom.Element) Props {
	props := make(Props)
	for _, attr := range el.Attributes() {
		if attr.Name == ThemeAttribute {
			continue
		}
		decl, ok := m.index.Resolve(attr.Name)
		if !ok {
			continue
		}
		props[decl.Name] = m.resolve(el, decl, attr.Value)
	}
	return props
}

func (m *DefaultMapper) resolve(el *dom.Element, decl Declaration, raw string) any {
	switch decl.Kind {
	case KindData:
		return coerce.ParseValue(raw)
	case KindFunction:
		return channel.BindFunction(el, m.scope, raw)
	case KindEvent:
		// The attribute value is irrelevant; presence binds the event.
		return channel.BindEvent(el, decl.Name)
	}
	return nil
}
