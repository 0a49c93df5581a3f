package element

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vango-dev/wcbridge/internal/errors"
	"github.com/vango-dev/wcbridge/pkg/dom"
	"github.com/vango-dev/wcbridge/pkg/vdom"
)

type fakeRoot struct {
	renders   []*vdom.VNode
	unmounted bool
}

func (r *fakeRoot) Render(node *vdom.VNode) { r.renders = append(r.renders, vdom.Expand(node)) }
func (r *fakeRoot) Unmount()                { r.unmounted = true }

type recorder struct {
	roots    []*fakeRoot
	props    []Props
	wrapped  []WrapperProps
	observed []State
	rendered int
}

func (rec *recorder) Transition(_ string, _, to State)   { rec.observed = append(rec.observed, to) }
func (rec *recorder) Rendered(_ string, _ time.Duration) { rec.rendered++ }

func (rec *recorder) options(tag string) Options {
	return Options{
		TagName:            tag,
		DataAttributes:     []string{"count", "label"},
		FunctionAttributes: []string{"onSubmit"},
		EventAttributes:    []string{"onChange"},
		Render: func(props Props, _ *dom.ShadowRoot) *vdom.VNode {
			rec.props = append(rec.props, props)
			return vdom.Span(vdom.Textf("%v", props["count"]))
		},
		Wrapper: func(p WrapperProps) *vdom.VNode {
			rec.wrapped = append(rec.wrapped, p)
			return p.Component
		},
		CreateRoot: func(*dom.ShadowRoot) Root {
			r := &fakeRoot{}
			rec.roots = append(rec.roots, r)
			return r
		},
		Observer: rec,
	}
}

func defineRecorder(t *testing.T, doc *dom.Document, tag string) *recorder {
	t.Helper()
	rec := &recorder{}
	if _, err := Define(doc.Registry(), rec.options(tag)); err != nil {
		t.Fatalf("Define: %v", err)
	}
	return rec
}

func TestInstanceLifecycle(t *testing.T) {
	doc := dom.NewDocument()
	rec := defineRecorder(t, doc, "x-counter")

	el := doc.CreateElement("x-counter")
	in, ok := InstanceOf(el)
	if !ok {
		t.Fatal("element was not upgraded")
	}
	if in.State() != StateUnattached || in.Boundary() == nil || len(in.Props()) != 0 {
		t.Fatalf("fresh instance: state=%v boundary=%v props=%v", in.State(), in.Boundary(), in.Props())
	}

	el.SetAttribute("count", "1")
	if len(rec.props) != 0 {
		t.Fatal("attribute change before connection should not render")
	}

	if err := doc.Body().AppendChild(el); err != nil {
		t.Fatal(err)
	}
	if in.State() != StateConnected {
		t.Fatalf("state = %v, want connected", in.State())
	}
	if len(rec.roots) != 1 || len(rec.roots[0].renders) != 1 {
		t.Fatalf("roots=%d, want one root with one render", len(rec.roots))
	}
	if got := rec.props[0]["count"]; got != float64(1) {
		t.Errorf("count = %#v, want 1", got)
	}

	el.SetAttribute("count", "2")
	if len(rec.roots[0].renders) != 2 || rec.props[1]["count"] != float64(2) {
		t.Fatalf("renders=%d props=%v", len(rec.roots[0].renders), rec.props)
	}

	// Same value: no render.
	el.SetAttribute("count", "2")
	if len(rec.roots[0].renders) != 2 {
		t.Errorf("unchanged attribute rendered again")
	}

	el.Remove()
	if in.State() != StateDisconnected || !rec.roots[0].unmounted || in.Root() != nil {
		t.Fatalf("after remove: state=%v unmounted=%v", in.State(), rec.roots[0].unmounted)
	}

	el.SetAttribute("count", "3")
	if len(rec.props) != 2 {
		t.Error("attribute change while disconnected should not render")
	}

	if err := doc.Body().AppendChild(el); err != nil {
		t.Fatal(err)
	}
	if len(rec.roots) != 2 {
		t.Fatalf("reconnection should create a new root, have %d", len(rec.roots))
	}
	if got := rec.props[len(rec.props)-1]["count"]; got != float64(3) {
		t.Errorf("reconnected count = %#v, want 3", got)
	}

	want := []State{StateConnected, StateDisconnected, StateConnected}
	if !reflect.DeepEqual(rec.observed, want) {
		t.Errorf("transitions = %v, want %v", rec.observed, want)
	}
	if rec.rendered != 3 {
		t.Errorf("rendered = %d, want 3", rec.rendered)
	}
}

func TestInstanceFunctionAttributeNotObserved(t *testing.T) {
	doc := dom.NewDocument()
	rec := defineRecorder(t, doc, "x-form")
	el := doc.CreateElement("x-form")
	if err := doc.Body().AppendChild(el); err != nil {
		t.Fatal(err)
	}

	el.SetAttribute("onSubmit", "submitIt")
	if len(rec.props) != 1 {
		t.Fatalf("function attribute change rendered; renders = %d", len(rec.props))
	}

	// The next qualifying change picks it up.
	el.SetAttribute("label", "go")
	in, _ := InstanceOf(el)
	if _, ok := in.Handler("onSubmit"); !ok {
		t.Error("onSubmit handler missing after remap")
	}
}

func TestInstanceEventAttributeRerenders(t *testing.T) {
	doc := dom.NewDocument()
	rec := defineRecorder(t, doc, "x-evt")
	el := doc.CreateElement("x-evt")
	if err := doc.Body().AppendChild(el); err != nil {
		t.Fatal(err)
	}
	el.SetAttribute("onchange", "")
	if len(rec.props) != 2 {
		t.Fatalf("renders = %d, want 2", len(rec.props))
	}
	if _, ok := rec.props[1]["onChange"]; !ok {
		t.Error("onChange should be bound after the event attribute appears")
	}
}

func TestInstanceTheme(t *testing.T) {
	doc := dom.NewDocument()
	rec := defineRecorder(t, doc, "x-themed")
	el := doc.CreateElement("x-themed")
	el.SetAttribute("theme", "mui-dark")
	if err := doc.Body().AppendChild(el); err != nil {
		t.Fatal(err)
	}
	if got := rec.wrapped[0].Theme; got != "mui-dark" {
		t.Errorf("theme = %q", got)
	}
	if _, ok := rec.wrapped[0].Properties["theme"]; ok {
		t.Error("theme must not be mapped into properties")
	}
	if rec.wrapped[0].RenderTarget == nil || rec.wrapped[0].Component == nil {
		t.Error("wrapper props incomplete")
	}
}

func TestInstanceThemeChanges(t *testing.T) {
	doc := dom.NewDocument()
	rec := &recorder{}
	opts := rec.options("x-rethemed")
	opts.DataAttributes = append(opts.DataAttributes, "theme")
	if _, err := Define(doc.Registry(), opts); err != nil {
		t.Fatal(err)
	}

	el := doc.CreateElement("x-rethemed")
	el.SetAttribute("theme", "mui-light")
	if err := doc.Body().AppendChild(el); err != nil {
		t.Fatal(err)
	}
	el.SetAttribute("theme", "mui-dark")
	el.RemoveAttribute("theme")

	var themes []string
	for _, p := range rec.wrapped {
		themes = append(themes, p.Theme)
		if _, ok := p.Properties["theme"]; ok {
			t.Errorf("theme %q mapped into properties", p.Theme)
		}
	}
	if want := []string{"mui-light", "mui-dark", ""}; !reflect.DeepEqual(themes, want) {
		t.Errorf("themes = %q, want %q", themes, want)
	}
	in, _ := InstanceOf(el)
	if in.Theme() != "" {
		t.Errorf("Theme() = %q after removal", in.Theme())
	}
}

func TestInstanceMissingBoundary(t *testing.T) {
	doc := dom.NewDocument()
	el := doc.CreateElement("x-late")
	if _, err := el.AttachShadow(dom.ShadowOpen); err != nil {
		t.Fatal(err)
	}
	if err := doc.Body().AppendChild(el); err != nil {
		t.Fatal(err)
	}

	rec := defineRecorder(t, doc, "x-late")
	in, ok := InstanceOf(el)
	if !ok {
		t.Fatal("late definition should upgrade the existing element")
	}
	if in.Boundary() != nil {
		t.Error("boundary should be nil when a shadow root already exists")
	}
	if in.State() != StateConnected {
		t.Errorf("state = %v", in.State())
	}
	el.SetAttribute("count", "5")
	if len(rec.roots) != 0 || len(rec.props) != 0 {
		t.Error("renders must be skipped without a boundary")
	}
}

func TestLateDefinitionUpgrade(t *testing.T) {
	doc := dom.NewDocument()
	el := doc.CreateElement("x-up")
	el.SetAttribute("count", "7")
	if err := doc.Body().AppendChild(el); err != nil {
		t.Fatal(err)
	}

	rec := defineRecorder(t, doc, "x-up")
	if len(rec.props) != 1 || rec.props[0]["count"] != float64(7) {
		t.Errorf("upgrade render props = %v", rec.props)
	}
}

func TestInstanceAdopted(t *testing.T) {
	doc := dom.NewDocument()
	rec := defineRecorder(t, doc, "x-move")
	el := doc.CreateElement("x-move")
	in, _ := InstanceOf(el)

	other := dom.NewDocument()
	other.AdoptNode(el)
	if in.State() != StateUnattached || len(rec.props) != 0 {
		t.Error("adoption should not change state or render")
	}
}

func TestDefineErrors(t *testing.T) {
	render := func(Props, *dom.ShadowRoot) *vdom.VNode { return nil }
	tests := []struct {
		name string
		opts Options
		code string
	}{
		{"missing tag", Options{Render: render}, "E001"},
		{"missing render", Options{TagName: "x-a"}, "E002"},
		{"invalid name", Options{TagName: "nohyphen", Render: render}, "E003"},
		{"uppercase", Options{TagName: "X-Upper", Render: render}, "E003"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Define(dom.NewDocument().Registry(), tt.opts)
			if got := errors.CodeOf(err); got != tt.code {
				t.Errorf("code = %q, want %q (err %v)", got, tt.code, err)
			}
		})
	}

	reg := dom.NewDocument().Registry()
	opts := Options{TagName: "x-twice", Render: render}
	if _, err := Define(reg, opts); err != nil {
		t.Fatal(err)
	}
	_, err := Define(reg, opts)
	if errors.CodeOf(err) != "E004" {
		t.Errorf("redefinition err = %v", err)
	}
	if !strings.Contains(err.Error(), "x-twice") {
		t.Errorf("error should name the tag: %v", err)
	}
}

func TestObservedAttributes(t *testing.T) {
	d, err := NewDefinition((&recorder{}).options("x-obs"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"count", "label", "onChange"}
	if got := d.ObservedAttributes(); !reflect.DeepEqual(got, want) {
		t.Errorf("ObservedAttributes = %v, want %v", got, want)
	}
}
