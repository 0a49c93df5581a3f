package element

import (
	stderrors "errors"
	"log/slog"

	"github.com/vango-dev/wcbridge/internal/errors"
	"github.com/vango-dev/wcbridge/pkg/channel"
	"github.com/vango-dev/wcbridge/pkg/dom"
	"github.com/vango-dev/wcbridge/pkg/render"
	"github.com/vango-dev/wcbridge/pkg/vdom"
)

// RenderFunc produces a component's UI from its properties. target is the
// element's rendering boundary.
type RenderFunc func(props Props, target *dom.ShadowRoot) *vdom.VNode

// WrapperProps is what a Wrapper receives on every render.
type WrapperProps struct {
	RenderTarget *dom.ShadowRoot
	Theme        string // empty when the theme attribute is unset
	Properties   Props
	Component    *vdom.VNode
}

// Wrapper surrounds the rendered component, typically with theming.
type Wrapper func(p WrapperProps) *vdom.VNode

// PlainWrapper renders the component unchanged.
func PlainWrapper(p WrapperProps) *vdom.VNode { return p.Component }

// Root displays UI descriptions inside a rendering boundary.
type Root interface {
	Render(node *vdom.VNode)
	Unmount()
}

// RootFactory creates a Root bound to a rendering boundary.
type RootFactory func(target *dom.ShadowRoot) Root

// Options configures a custom element definition. All fields are fixed
// once the definition is created.
type Options struct {
	// TagName is the custom element name, e.g. "my-counter".
	TagName string

	// DataAttributes are coerced into typed properties.
	DataAttributes []string

	// FunctionAttributes name global callables.
	FunctionAttributes []string

	// EventAttributes dispatch DOM events when their handler is called.
	EventAttributes []string

	// Render produces the component UI. Required.
	Render RenderFunc

	// Mapper replaces the default attribute mapper.
	Mapper Mapper

	// Wrapper surrounds the component. Defaults to PlainWrapper.
	Wrapper Wrapper

	// CreateRoot creates render roots. Defaults to render.CreateRoot.
	CreateRoot RootFactory

	// Scope resolves function attributes for the default mapper.
	// Defaults to channel.DefaultScope().
	Scope channel.Scope

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Observer receives lifecycle telemetry.
	Observer Observer
}

// Definition is a custom element class: the shared, immutable part of all
// instances of one tag.
type Definition struct {
	tag        string
	decls      Declarations
	render     RenderFunc
	mapper     Mapper
	wrapper    Wrapper
	createRoot RootFactory
	logger     *slog.Logger
	observer   Observer
}

// NewDefinition validates opts and builds a definition. The tag name is
// checked by the registry when the definition is registered.
func NewDefinition(opts Options) (*Definition, error) {
	if opts.TagName == "" {
		return nil, errors.New("E001").
			WithSuggestion("Set Options.TagName to a hyphenated name such as my-counter")
	}
	if opts.Render == nil {
		return nil, errors.New("E002").WithDetailf("element %q has no Render function", opts.TagName)
	}

	d := &Definition{
		tag: opts.TagName,
		decls: Declarations{
			Data:     append([]string(nil), opts.DataAttributes...),
			Function: append([]string(nil), opts.FunctionAttributes...),
			Event:    append([]string(nil), opts.EventAttributes...),
		},
		render:     opts.Render,
		mapper:     opts.Mapper,
		wrapper:    opts.Wrapper,
		createRoot: opts.CreateRoot,
		logger:     opts.Logger,
		observer:   opts.Observer,
	}
	if d.mapper == nil {
		d.mapper = NewMapper(d.decls, opts.Scope)
	}
	if d.wrapper == nil {
		d.wrapper = PlainWrapper
	}
	if d.createRoot == nil {
		d.createRoot = func(target *dom.ShadowRoot) Root { return render.CreateRoot(target) }
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	d.logger = d.logger.With("component", "element", "tag", d.tag)
	if d.observer == nil {
		d.observer = nopObserver{}
	}
	return d, nil
}

// TagName returns the custom element name.
func (d *Definition) TagName() string { return d.tag }

// Declarations returns the declared attribute names.
func (d *Definition) Declarations() Declarations { return d.decls }

// ObservedAttributes returns the attributes whose changes trigger a
// re-render: data and event attributes. Function attributes are resolved by
// name at call time and are not observed.
func (d *Definition) ObservedAttributes() []string {
	observed := make([]string, 0, len(d.decls.Data)+len(d.decls.Event))
	observed = append(observed, d.decls.Data...)
	return append(observed, d.decls.Event...)
}

// Constructor returns the platform constructor for this definition.
func (d *Definition) Constructor() dom.Constructor {
	return func(el *dom.Element) dom.CustomElement {
		return d.construct(el)
	}
}

// Define builds a definition from opts and registers it with reg.
func Define(reg *dom.Registry, opts Options) (*Definition, error) {
	d, err := NewDefinition(opts)
	if err != nil {
		return nil, err
	}
	if err := reg.Define(d.tag, d.Constructor(), d.ObservedAttributes()); err != nil {
		switch {
		case stderrors.Is(err, dom.ErrInvalidName):
			return nil, errors.New("E003").WithDetailf("%q", d.tag).Wrap(err).
				WithSuggestion("Custom element names start with a lowercase letter and contain a hyphen")
		case stderrors.Is(err, dom.ErrAlreadyDefined):
			return nil, errors.New("E004").WithDetailf("%q", d.tag).Wrap(err)
		default:
			return nil, err
		}
	}
	d.logger.Debug("custom element defined", "observed", d.ObservedAttributes())
	return d, nil
}
