// Package jsscope exposes a goja runtime's global object as a
// channel.Scope, so function attributes can name JavaScript functions.
package jsscope

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dop251/goja"

	"github.com/vango-dev/wcbridge/pkg/channel"
)

// Scope resolves names against the global object of a goja runtime.
//
// goja runtimes are not safe for concurrent use; callers must serialize
// access to the runtime, including calls made through handlers bound to
// this scope.
type Scope struct {
	rt     *goja.Runtime
	logger *slog.Logger
}

// New wraps rt.
func New(rt *goja.Runtime) *Scope {
	return &Scope{
		rt:     rt,
		logger: slog.Default().With("component", "jsscope"),
	}
}

// WithLogger replaces the logger used for absorbed script exceptions.
func (s *Scope) WithLogger(logger *slog.Logger) *Scope {
	s.logger = logger
	return s
}

// Runtime returns the wrapped runtime.
func (s *Scope) Runtime() *goja.Runtime { return s.rt }

// Lookup implements channel.Scope. Script functions are returned as
// channel.Func; other global values are returned as exported Go values.
func (s *Scope) Lookup(name string) (any, bool) {
	v := s.rt.GlobalObject().Get(name)
	if v == nil {
		return nil, false
	}
	fn, ok := goja.AssertFunction(v)
	if !ok {
		return v.Export(), true
	}
	return channel.Func(func(this any, args ...any) {
		jsArgs := make([]goja.Value, len(args))
		for i, a := range args {
			jsArgs[i] = s.rt.ToValue(a)
		}
		if _, err := fn(s.rt.ToValue(this), jsArgs...); err != nil {
			s.logger.Debug("global function threw", "name", name, "error", err)
		}
	}), true
}

// Set defines a global in the runtime.
func (s *Scope) Set(name string, value any) error {
	return s.rt.Set(name, value)
}

// Run evaluates src as a script named name. Top-level function
// declarations become resolvable globals.
func (s *Scope) Run(name, src string) error {
	if _, err := s.rt.RunScript(name, src); err != nil {
		return fmt.Errorf("jsscope: %s: %w", name, err)
	}
	return nil
}

// RunFile evaluates the script at path.
func (s *Scope) RunFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("jsscope: %w", err)
	}
	return s.Run(path, string(src))
}
