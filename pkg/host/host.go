// Package host is a development host for custom elements. It keeps one
// document with the manifest's elements defined, and exposes an HTTP API
// to create element instances, change their attributes, move them in and
// out of the document and invoke their handler properties. Events
// dispatched by instances are streamed to websocket clients.
//
// All document access is serialized by a single mutex, which plays the
// part of the page's main thread.
package host

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/wcbridge/internal/config"
	"github.com/vango-dev/wcbridge/internal/demo"
	cerrors "github.com/vango-dev/wcbridge/internal/errors"
	"github.com/vango-dev/wcbridge/pkg/channel"
	"github.com/vango-dev/wcbridge/pkg/dom"
	"github.com/vango-dev/wcbridge/pkg/element"
	"github.com/vango-dev/wcbridge/pkg/metrics"
)

// Options configures a Host.
type Options struct {
	// Manifest declares the elements to define. Required.
	Manifest *config.Manifest

	// Catalog resolves component and wrapper names. Defaults to demo.Default().
	Catalog *demo.Catalog

	// Scope resolves function attributes. Defaults to channel.DefaultScope().
	Scope channel.Scope

	// Registry receives the host's metrics. Defaults to a new registry.
	Registry *prometheus.Registry

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Host owns the document and the element instances created through it.
type Host struct {
	mu        sync.Mutex
	doc       *dom.Document
	instances map[string]*dom.Element
	ids       map[*dom.Element]string

	manifest *config.Manifest
	registry *prometheus.Registry
	hub      *Hub
	logger   *slog.Logger
}

// New creates a host and defines the manifest's elements.
func New(opts Options) (*Host, error) {
	if opts.Manifest == nil {
		return nil, errors.New("host: manifest is required")
	}
	if opts.Catalog == nil {
		opts.Catalog = demo.Default()
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	logger := opts.Logger.With("component", "host")

	h := &Host{
		doc:       dom.NewDocument(),
		instances: make(map[string]*dom.Element),
		ids:       make(map[*dom.Element]string),
		manifest:  opts.Manifest,
		registry:  opts.Registry,
		hub:       NewHub(opts.Manifest.Server.AllowedOrigins, logger),
		logger:    logger,
	}

	_, err := opts.Catalog.Install(h.doc.Registry(), opts.Manifest, demo.InstallOptions{
		Scope:    opts.Scope,
		Observer: metrics.New(metrics.WithRegistry(opts.Registry)),
		Logger:   opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	for _, name := range watchedEvents(opts.Manifest) {
		h.doc.AddEventListener(name, h.forward)
	}
	return h, nil
}

func watchedEvents(m *config.Manifest) []string {
	seen := make(map[string]bool)
	var names []string
	for _, el := range m.Elements {
		for _, attr := range el.Events {
			name := channel.EventName(attr)
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// forward runs with h.mu held: events are only dispatched from handler
// calls made by the API.
func (h *Host) forward(ev *dom.CustomEvent) {
	msg := EventMessage{Type: ev.Type, Detail: ev.Detail}
	if ev.Target != nil {
		msg.Target = h.ids[ev.Target]
		msg.Tag = ev.Target.TagName()
	}
	h.hub.Broadcast(msg)
}

// Do runs fn with exclusive access to the document.
func (h *Host) Do(fn func(doc *dom.Document)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fn(h.doc)
}

// Hub returns the event hub.
func (h *Host) Hub() *Hub { return h.hub }

// ElementView is the API representation of an instance.
type ElementView struct {
	ID         string            `json:"id"`
	Tag        string            `json:"tag"`
	State      string            `json:"state"`
	Connected  bool              `json:"connected"`
	Attributes map[string]string `json:"attributes"`
	Props      map[string]any    `json:"props"`
	Theme      string            `json:"theme,omitempty"`
	HTML       string            `json:"html"`
}

// CreateRequest creates an instance.
type CreateRequest struct {
	Tag        string            `json:"tag"`
	Attributes map[string]string `json:"attributes,omitempty"`
	// Detached leaves the instance out of the document.
	Detached bool `json:"detached,omitempty"`
}

// Create creates an instance, sets its attributes and, unless detached,
// appends it to the body.
func (h *Host) Create(req CreateRequest) (ElementView, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.doc.Registry().IsDefined(req.Tag) {
		return ElementView{}, cerrors.New("E141").WithDetailf("%q", req.Tag)
	}
	el := h.doc.CreateElement(req.Tag)

	names := make([]string, 0, len(req.Attributes))
	for name := range req.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		el.SetAttribute(name, req.Attributes[name])
	}

	if !req.Detached {
		if err := h.doc.Body().AppendChild(el); err != nil {
			return ElementView{}, err
		}
	}

	id := uuid.NewString()
	h.instances[id] = el
	h.ids[el] = id
	h.logger.Debug("instance created", "id", id, "tag", req.Tag)
	return h.view(id, el), nil
}

// Get returns an instance.
func (h *Host) Get(id string) (ElementView, error) {
	return h.with(id, func(*dom.Element) error { return nil })
}

// List returns every instance, ordered by id.
func (h *Host) List() []ElementView {
	h.mu.Lock()
	defer h.mu.Unlock()
	views := make([]ElementView, 0, len(h.instances))
	for id, el := range h.instances {
		views = append(views, h.view(id, el))
	}
	sort.Slice(views, func(i, j int) bool { return views[i].ID < views[j].ID })
	return views
}

// SetAttribute sets an attribute on an instance.
func (h *Host) SetAttribute(id, name, value string) (ElementView, error) {
	return h.with(id, func(el *dom.Element) error {
		el.SetAttribute(name, value)
		return nil
	})
}

// RemoveAttribute removes an attribute from an instance.
func (h *Host) RemoveAttribute(id, name string) (ElementView, error) {
	return h.with(id, func(el *dom.Element) error {
		el.RemoveAttribute(name)
		return nil
	})
}

// Detach removes an instance from the document.
func (h *Host) Detach(id string) (ElementView, error) {
	return h.with(id, func(el *dom.Element) error {
		el.Remove()
		return nil
	})
}

// Attach appends an instance to the body.
func (h *Host) Attach(id string) (ElementView, error) {
	return h.with(id, func(el *dom.Element) error {
		return h.doc.Body().AppendChild(el)
	})
}

// Call invokes the handler stored in an instance property.
func (h *Host) Call(id, prop string, args []any) (ElementView, error) {
	return h.with(id, func(el *dom.Element) error {
		in, ok := element.InstanceOf(el)
		if !ok {
			return cerrors.New("E142").WithDetailf("%s is not upgraded", el.TagName())
		}
		handler, ok := in.Handler(prop)
		if !ok {
			return cerrors.New("E142").WithDetailf("%q", prop)
		}
		handler(args...)
		return nil
	})
}

// Delete removes an instance from the document and forgets it.
func (h *Host) Delete(id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	el, ok := h.instances[id]
	if !ok {
		return cerrors.New("E140").WithDetail(id)
	}
	el.Remove()
	delete(h.instances, id)
	delete(h.ids, el)
	return nil
}

func (h *Host) with(id string, fn func(el *dom.Element) error) (ElementView, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	el, ok := h.instances[id]
	if !ok {
		return ElementView{}, cerrors.New("E140").WithDetail(id)
	}
	if err := fn(el); err != nil {
		return ElementView{}, err
	}
	return h.view(id, el), nil
}

func (h *Host) view(id string, el *dom.Element) ElementView {
	v := ElementView{
		ID:         id,
		Tag:        el.TagName(),
		Connected:  el.IsConnected(),
		Attributes: make(map[string]string),
		Props:      make(map[string]any),
	}
	for _, a := range el.Attributes() {
		v.Attributes[a.Name] = a.Value
	}
	if in, ok := element.InstanceOf(el); ok {
		v.State = in.State().String()
		v.Theme = in.Theme()
		for k, p := range in.Props() {
			v.Props[k] = describe(p)
		}
	}
	if shadow := el.ShadowRoot(); shadow != nil {
		v.HTML = shadow.InnerHTML()
	}
	return v
}

// describe replaces values JSON cannot carry. Non-finite numbers are
// spelled the way JavaScript prints them.
func describe(v any) any {
	switch x := v.(type) {
	case channel.Handler:
		return "[handler]"
	case float64:
		switch {
		case math.IsNaN(x):
			return "NaN"
		case math.IsInf(x, 1):
			return "Infinity"
		case math.IsInf(x, -1):
			return "-Infinity"
		}
		return x
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = describe(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = describe(e)
		}
		return out
	}
	return v
}

// ListenAndServe serves the API on addr until ctx is done, then shuts the
// server down gracefully.
func (h *Host) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		h.logger.Info("host listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	h.hub.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	h.logger.Info("host stopped")
	return nil
}
