package element

import "strings"

// ThemeAttribute is the reserved attribute carrying the theme name.
const ThemeAttribute = "theme"

// Kind is the category of a declared attribute.
type Kind uint8

const (
	KindData Kind = iota + 1
	KindFunction
	KindEvent
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindData:
		return "data"
	case KindFunction:
		return "function"
	case KindEvent:
		return "event"
	default:
		return "unknown"
	}
}

// Declarations lists the attribute names of each category.
type Declarations struct {
	Data     []string
	Function []string
	Event    []string
}

// Declaration is a declared attribute resolved from a DOM attribute name.
type Declaration struct {
	Kind Kind
	Name string // declared casing
}

// Index resolves DOM attribute names to declarations.
type Index struct {
	byName map[string]Declaration
}

// Index builds the lookup table. When a name is declared more than once the
// first declaration in precedence order (data, function, event) wins.
func (d Declarations) Index() *Index {
	ix := &Index{byName: make(map[string]Declaration)}
	for _, group := range []struct {
		kind  Kind
		names []string
	}{
		{KindData, d.Data},
		{KindFunction, d.Function},
		{KindEvent, d.Event},
	} {
		for _, name := range group.names {
			key := strings.ToLower(name)
			if _, taken := ix.byName[key]; taken {
				continue
			}
			ix.byName[key] = Declaration{Kind: group.kind, Name: name}
		}
	}
	return ix
}

// Resolve looks up a DOM attribute name case-insensitively.
func (ix *Index) Resolve(attr string) (Declaration, bool) {
	d, ok := ix.byName[strings.ToLower(attr)]
	return d, ok
}

// Len returns the number of distinct declared names.
func (ix *Index) Len() int { return len(ix.byName) }
