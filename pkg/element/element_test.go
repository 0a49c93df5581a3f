package element

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vango-dev/wcbridge/pkg/channel"
	"github.com/vango-dev/wcbridge/pkg/dom"
	"github.com/vango-dev/wcbridge/pkg/render"
	"github.com/vango-dev/wcbridge/pkg/vdom"
)

// End to end through the default render root.
func TestDefinedElementRenders(t *testing.T) {
	doc := dom.NewDocument()
	var last Props
	_, err := Define(doc.Registry(), Options{
		TagName:        "x-card",
		DataAttributes: []string{"count", "width", "flag", "cfg"},
		Render: func(props Props, _ *dom.ShadowRoot) *vdom.VNode {
			last = props
			return vdom.Div(vdom.Class("card"), vdom.Textf("count=%v", props["count"]))
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	el := doc.CreateElement("x-card")
	el.SetAttribute("count", "42")
	el.SetAttribute("width", "42px")
	el.SetAttribute("flag", "")
	el.SetAttribute("cfg", `{"x":2}`)
	if err := doc.Body().AppendChild(el); err != nil {
		t.Fatal(err)
	}

	if last["count"] != float64(42) || last["width"] != "42px" || last["flag"] != true {
		t.Errorf("props = %#v", last)
	}
	if cfg, ok := last["cfg"].(map[string]any); !ok || cfg["x"] != float64(2) {
		t.Errorf("cfg = %#v", last["cfg"])
	}

	shadow := el.ShadowRoot()
	if want := `<div class="card">count=42</div>`; shadow.InnerHTML() != want {
		t.Errorf("shadow html = %q, want %q", shadow.InnerHTML(), want)
	}

	in, _ := InstanceOf(el)
	root := in.Root().(*render.Root)

	// Re-setting identical values recomputes props but commits nothing new.
	el.SetAttribute("flag", "true")
	if root.Commits() != 1 || root.LastPatchCount() != 0 {
		t.Errorf("commits=%d patches=%d, want 1 and 0", root.Commits(), root.LastPatchCount())
	}

	el.SetAttribute("count", "43")
	if !strings.Contains(shadow.InnerHTML(), "count=43") || root.Commits() != 2 {
		t.Errorf("html = %q commits = %d", shadow.InnerHTML(), root.Commits())
	}

	el.Remove()
	if shadow.InnerHTML() != "" || !root.Unmounted() {
		t.Error("disconnect should unmount and clear the boundary")
	}
}

func TestEventAndFunctionChannels(t *testing.T) {
	scope := channel.NewRegistry()
	var submitted []any
	scope.Set("onSave", func(args ...any) { submitted = append(submitted, args...) })

	doc := dom.NewDocument()
	_, err := Define(doc.Registry(), Options{
		TagName:            "x-editor",
		FunctionAttributes: []string{"onSubmit"},
		EventAttributes:    []string{"onValueChanged"},
		Scope:              scope,
		Render:             func(Props, *dom.ShadowRoot) *vdom.VNode { return vdom.Text("editor") },
	})
	if err != nil {
		t.Fatal(err)
	}

	var details []any
	doc.AddEventListener("valueChanged", func(ev *dom.CustomEvent) { details = append(details, ev.Detail) })

	host := doc.CreateElement("div")
	if err := doc.Body().AppendChild(host); err != nil {
		t.Fatal(err)
	}
	el := doc.CreateElement("x-editor")
	el.SetAttribute("onSubmit", "onSave")
	el.SetAttribute("onValueChanged", "")
	if err := host.AppendChild(el); err != nil {
		t.Fatal(err)
	}

	in, _ := InstanceOf(el)
	change, ok := in.Handler("onValueChanged")
	if !ok {
		t.Fatal("missing event handler")
	}
	change("a", 2)
	change()
	if len(details) != 2 || fmt.Sprint(details[0]) != "[a 2]" {
		t.Errorf("details = %#v", details)
	}
	if d, ok := details[1].([]any); !ok || len(d) != 0 {
		t.Errorf("zero-arg detail = %#v", details[1])
	}

	submit, ok := in.Handler("onSubmit")
	if !ok {
		t.Fatal("missing function handler")
	}
	submit("x")
	if len(submitted) != 1 || submitted[0] != "x" {
		t.Errorf("submitted = %#v", submitted)
	}

	// Unresolved names are silent no-ops.
	scope.Delete("onSave")
	submit("y")
	if len(submitted) != 1 {
		t.Error("call after delete should be a no-op")
	}
}
