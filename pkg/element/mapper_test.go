package element

import (
	"reflect"
	"testing"

	"github.com/vango-dev/wcbridge/pkg/channel"
	"github.com/vango-dev/wcbridge/pkg/dom"
)

func TestDeclarationsIndex(t *testing.T) {
	idx := Declarations{
		Data:     []string{"count", "Shared"},
		Function: []string{"onSubmit", "shared"},
		Event:    []string{"onChange", "SHARED"},
	}.Index()

	tests := []struct {
		attr     string
		wantKind Kind
		wantName string
		wantOK   bool
	}{
		{"count", KindData, "count", true},
		{"COUNT", KindData, "count", true},
		{"onsubmit", KindFunction, "onSubmit", true},
		{"onchange", KindEvent, "onChange", true},
		{"shared", KindData, "Shared", true},
		{"missing", 0, "", false},
	}
	for _, tt := range tests {
		decl, ok := idx.Resolve(tt.attr)
		if ok != tt.wantOK {
			t.Errorf("Resolve(%q) ok = %v, want %v", tt.attr, ok, tt.wantOK)
			continue
		}
		if ok && (decl.Kind != tt.wantKind || decl.Name != tt.wantName) {
			t.Errorf("Resolve(%q) = %v %q, want %v %q", tt.attr, decl.Kind, decl.Name, tt.wantKind, tt.wantName)
		}
	}
}

func newElement(t *testing.T, attrs map[string]string) *dom.Element {
	t.Helper()
	doc := dom.NewDocument()
	el := doc.CreateElement("plain-el")
	for k, v := range attrs {
		el.SetAttribute(k, v)
	}
	return el
}

func TestDefaultMapperData(t *testing.T) {
	el := newElement(t, map[string]string{
		"count":   "42",
		"width":   "42px",
		"flag":    "",
		"cfg":     `{"x":2}`,
		"theme":   "mui-dark",
		"unknown": "ignored",
	})
	m := NewMapper(Declarations{Data: []string{"count", "width", "flag", "cfg", "theme"}}, nil)

	got := m.MapAttributes(el)
	want := Props{
		"count": float64(42),
		"width": "42px",
		"flag":  true,
		"cfg":   map[string]any{"x": float64(2)},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MapAttributes = %#v, want %#v", got, want)
	}
}

func TestDefaultMapperKeepsDeclaredCasing(t *testing.T) {
	el := newElement(t, map[string]string{"userName": "ada"})
	got := NewMapper(Declarations{Data: []string{"userName"}}, nil).MapAttributes(el)
	if got["userName"] != "ada" {
		t.Errorf("props = %#v, want key userName", got)
	}
	if _, ok := got["username"]; ok {
		t.Error("lowercased key should not be present")
	}
}

func TestDefaultMapperHandlers(t *testing.T) {
	scope := channel.NewRegistry()
	var calls [][]any
	var receiver any
	scope.Set("handleSubmit", func(this any, args ...any) {
		receiver = this
		calls = append(calls, args)
	})

	doc := dom.NewDocument()
	el := doc.CreateElement("plain-el")
	if err := doc.Body().AppendChild(el); err != nil {
		t.Fatal(err)
	}
	el.SetAttribute("onSubmit", "handleSubmit")
	el.SetAttribute("onChange", "whatever")

	var events []*dom.CustomEvent
	doc.AddEventListener("change", func(ev *dom.CustomEvent) { events = append(events, ev) })

	props := NewMapper(Declarations{
		Function: []string{"onSubmit"},
		Event:    []string{"onChange"},
	}, scope).MapAttributes(el)

	submit, ok := props["onSubmit"].(channel.Handler)
	if !ok {
		t.Fatalf("onSubmit = %T, want channel.Handler", props["onSubmit"])
	}
	submit("a", 2)
	if len(calls) != 1 || !reflect.DeepEqual(calls[0], []any{"a", 2}) {
		t.Errorf("calls = %#v", calls)
	}
	if receiver != el {
		t.Error("receiver should be the element")
	}

	change, ok := props["onChange"].(channel.Handler)
	if !ok {
		t.Fatalf("onChange = %T, want channel.Handler", props["onChange"])
	}
	change("v")
	if len(events) != 1 || events[0].Detail != "v" {
		t.Errorf("events = %#v", events)
	}
}

func TestDefaultMapperIdempotent(t *testing.T) {
	el := newElement(t, map[string]string{"count": "1", "cfg": "[1,2]"})
	m := NewMapper(Declarations{Data: []string{"count", "cfg"}}, nil)
	a, b := m.MapAttributes(el), m.MapAttributes(el)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("remap differs: %#v vs %#v", a, b)
	}
}

func TestMapperFunc(t *testing.T) {
	m := MapperFunc(func(el *dom.Element) Props { return Props{"tag": el.TagName()} })
	el := newElement(t, nil)
	if got := m.MapAttributes(el)["tag"]; got != "plain-el" {
		t.Errorf("tag = %v", got)
	}
}
