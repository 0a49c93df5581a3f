package channel

import "sync"

// Func is a callable registered in a Scope. this is the element that
// triggered the call.
type Func func(this any, args ...any)

// Scope resolves global names. Lookup reports whether the name is present;
// a present value need not be callable.
type Scope interface {
	Lookup(name string) (any, bool)
}

// Registry is a mutable name to value Scope. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]any
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]any)}
}

// Set binds name to value.
func (r *Registry) Set(name string, value any) {
	r.mu.Lock()
	r.entries[name] = value
	r.mu.Unlock()
}

// Delete removes name.
func (r *Registry) Delete(name string) {
	r.mu.Lock()
	delete(r.entries, name)
	r.mu.Unlock()
}

// Lookup implements Scope.
func (r *Registry) Lookup(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.entries[name]
	return v, ok
}

type chain []Scope

// Chain returns a Scope consulting scopes in order. The first scope in
// which the name is present answers, even with a non-callable value.
func Chain(scopes ...Scope) Scope {
	return chain(scopes)
}

func (c chain) Lookup(name string) (any, bool) {
	for _, s := range c {
		if s == nil {
			continue
		}
		if v, ok := s.Lookup(name); ok {
			return v, true
		}
	}
	return nil, false
}

var (
	// Window is the window-like global namespace.
	Window = NewRegistry()

	// GlobalThis is the broader global namespace, consulted when a name is
	// absent from Window.
	GlobalThis = NewRegistry()
)

// DefaultScope returns the ambient scope used when none is injected.
func DefaultScope() Scope {
	return Chain(Window, GlobalThis)
}

// callable adapts the function shapes a Scope may hold.
func callable(v any) (Func, bool) {
	switch fn := v.(type) {
	case Func:
		return fn, fn != nil
	case func(this any, args ...any):
		return fn, fn != nil
	case func(args ...any):
		if fn == nil {
			return nil, false
		}
		return func(_ any, args ...any) { fn(args...) }, true
	case func():
		if fn == nil {
			return nil, false
		}
		return func(any, ...any) { fn() }, true
	}
	return nil, false
}
