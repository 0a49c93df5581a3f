// Package demo holds the components and wrappers a manifest can name, and
// installs manifest elements into a registry.
package demo

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/vango-dev/wcbridge/internal/config"
	"github.com/vango-dev/wcbridge/internal/errors"
	"github.com/vango-dev/wcbridge/pkg/channel"
	"github.com/vango-dev/wcbridge/pkg/dom"
	"github.com/vango-dev/wcbridge/pkg/element"
	"github.com/vango-dev/wcbridge/pkg/theme"
)

// Catalog maps names to render functions and wrappers.
type Catalog struct {
	components map[string]element.RenderFunc
	wrappers   map[string]element.Wrapper
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		components: make(map[string]element.RenderFunc),
		wrappers:   make(map[string]element.Wrapper),
	}
}

// Default returns a catalog with the built-in components and wrappers.
func Default() *Catalog {
	c := NewCatalog()
	c.AddComponent("counter", Counter)
	c.AddComponent("greeting", Greeting)
	c.AddComponent("profile", Profile)

	c.AddWrapper("plain", element.PlainWrapper)
	c.AddWrapper("theme", theme.Wrapper)
	c.AddWrapper(theme.NameLight, theme.WrapperFor(theme.Light()))
	c.AddWrapper(theme.NameDark, theme.WrapperFor(theme.DarkTheme()))
	c.AddWrapper(theme.NameCSSVars, theme.WrapperFor(theme.CSSVars()))
	return c
}

// AddComponent registers a render function.
func (c *Catalog) AddComponent(name string, fn element.RenderFunc) {
	c.components[name] = fn
}

// AddWrapper registers a wrapper.
func (c *Catalog) AddWrapper(name string, w element.Wrapper) {
	c.wrappers[name] = w
}

// Component returns the render function registered as name.
func (c *Catalog) Component(name string) (element.RenderFunc, error) {
	fn, ok := c.components[name]
	if !ok {
		return nil, errors.New("E102").WithDetailf("%q", name).
			WithSuggestion("Available components: " + strings.Join(c.Components(), ", "))
	}
	return fn, nil
}

// Wrapper returns the wrapper registered as name.
func (c *Catalog) Wrapper(name string) (element.Wrapper, error) {
	w, ok := c.wrappers[name]
	if !ok {
		return nil, errors.New("E103").WithDetailf("%q", name).
			WithSuggestion("Available wrappers: " + strings.Join(c.Wrappers(), ", "))
	}
	return w, nil
}

// Components returns the component names, sorted.
func (c *Catalog) Components() []string { return sortedKeys(c.components) }

// Wrappers returns the wrapper names, sorted.
func (c *Catalog) Wrappers() []string { return sortedKeys(c.wrappers) }

// InstallOptions are applied to every element a manifest declares.
type InstallOptions struct {
	Scope    channel.Scope
	Observer element.Observer
	Logger   *slog.Logger
}

// Options resolves an element declaration to definition options.
func (c *Catalog) Options(ec config.ElementConfig, opts InstallOptions) (element.Options, error) {
	render, err := c.Component(ec.Component)
	if err != nil {
		return element.Options{}, err
	}
	wrapper, err := c.Wrapper(ec.Wrapper)
	if err != nil {
		return element.Options{}, err
	}
	return element.Options{
		TagName:            ec.Tag,
		DataAttributes:     ec.Attributes,
		FunctionAttributes: ec.Functions,
		EventAttributes:    ec.Events,
		Render:             render,
		Wrapper:            wrapper,
		Scope:              opts.Scope,
		Logger:             opts.Logger,
		Observer:           opts.Observer,
	}, nil
}

// Install defines every element in m. Names, options and tags are all
// checked before anything is registered, so a bad manifest or a tag that
// reg already holds leaves reg untouched.
func (c *Catalog) Install(reg *dom.Registry, m *config.Manifest, opts InstallOptions) ([]*element.Definition, error) {
	all := make([]element.Options, 0, len(m.Elements))
	for _, ec := range m.Elements {
		o, err := c.Options(ec, opts)
		if err != nil {
			return nil, err
		}
		if _, err := element.NewDefinition(o); err != nil {
			return nil, err
		}
		switch {
		case !dom.ValidCustomElementName(ec.Tag):
			return nil, errors.New("E003").WithDetailf("%q", ec.Tag)
		case reg.IsDefined(ec.Tag):
			return nil, errors.New("E004").WithDetailf("%q", ec.Tag)
		}
		all = append(all, o)
	}

	defs := make([]*element.Definition, 0, len(all))
	for _, o := range all {
		d, err := element.Define(reg, o)
		if err != nil {
			return defs, err
		}
		defs = append(defs, d)
	}
	return defs, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
