package markup

import (
	"strings"
	"testing"

	"github.com/vango-dev/wcbridge/pkg/dom"
	"github.com/vango-dev/wcbridge/pkg/element"
	"github.com/vango-dev/wcbridge/pkg/vdom"
)

func defineGreeting(t *testing.T, doc *dom.Document) {
	t.Helper()
	_, err := element.Define(doc.Registry(), element.Options{
		TagName:        "x-greeting",
		DataAttributes: []string{"name"},
		Render: func(p element.Props, _ *dom.ShadowRoot) *vdom.VNode {
			return vdom.P(vdom.Textf("Hello, %v", p["name"]))
		},
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestParseUpgradesAndRenders(t *testing.T) {
	doc := dom.NewDocument()
	defineGreeting(t, doc)

	page, err := ParseString(`<!DOCTYPE html><html><body class="page">
<h1>Title &amp; more</h1>
<div><x-greeting name="Ada"><span>light</span></x-greeting></div>
</body></html>`, doc)
	if err != nil {
		t.Fatal(err)
	}

	greetings := page.Elements("x-greeting")
	if len(greetings) != 1 {
		t.Fatalf("found %d greetings", len(greetings))
	}
	in, ok := element.InstanceOf(greetings[0])
	if !ok || in.State() != element.StateConnected {
		t.Fatal("greeting should be upgraded and connected")
	}

	out, err := page.String()
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`<body class="page">`,
		`<h1>Title &amp; more</h1>`,
		`<x-greeting name="Ada"><template shadowrootmode="open"><p>Hello, Ada</p></template><span>light</span></x-greeting>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Rendering is repeatable and reflects attribute changes.
	greetings[0].SetAttribute("name", "Grace")
	out2, err := page.String()
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(out2, "<template") != 1 {
		t.Errorf("template inserted more than once:\n%s", out2)
	}
	if !strings.Contains(out2, `name="Grace"`) || !strings.Contains(out2, "Hello, Grace") {
		t.Errorf("attribute change not reflected:\n%s", out2)
	}
}

func TestParseUndefinedElement(t *testing.T) {
	doc := dom.NewDocument()
	page, err := ParseString(`<body><x-unknown data-a="1"></x-unknown></body>`, doc)
	if err != nil {
		t.Fatal(err)
	}
	out, err := page.String()
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "<template") {
		t.Error("undefined elements have no shadow root")
	}
	if len(page.Elements("")) != 2 {
		t.Errorf("elements = %d, want body and x-unknown", len(page.Elements("")))
	}
}
