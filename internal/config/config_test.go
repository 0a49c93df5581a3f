package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vango-dev/wcbridge/internal/errors"
)

func TestNew(t *testing.T) {
	m := New()
	if m.Server.Port != DefaultPort {
		t.Errorf("Server.Port = %d, want %d", m.Server.Port, DefaultPort)
	}
	if m.Server.Host != DefaultHost {
		t.Errorf("Server.Host = %q, want %q", m.Server.Host, DefaultHost)
	}
	if got := m.Server.Address(); got != "localhost:7070" {
		t.Errorf("Address() = %q", got)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Load(tmpDir)
	if errors.CodeOf(err) != "E100" {
		t.Fatalf("missing manifest err = %v, want E100", err)
	}

	manifest := `
elements:
  - tag: x-counter
    component: counter
    wrapper: theme
    attributes: [count, label]
    functions: [onLimit]
    events: [onChange]
  - tag: x-greeting
    component: greeting
    attributes: [name]
scripts:
  - js/handlers.js
server:
  host: 0.0.0.0
  port: 8080
publish:
  destination: out/index.html
`
	if err := os.WriteFile(filepath.Join(tmpDir, ManifestFileName), []byte(manifest), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(m.Elements) != 2 {
		t.Fatalf("Elements = %d, want 2", len(m.Elements))
	}
	counter := m.Elements[0]
	if counter.Tag != "x-counter" || counter.Wrapper != "theme" {
		t.Errorf("counter = %+v", counter)
	}
	if !reflect.DeepEqual(counter.Events, []string{"onChange"}) {
		t.Errorf("Events = %v", counter.Events)
	}
	if m.Elements[1].Wrapper != DefaultWrapper {
		t.Errorf("default wrapper = %q", m.Elements[1].Wrapper)
	}
	if m.Server.Address() != "0.0.0.0:8080" {
		t.Errorf("Address() = %q", m.Server.Address())
	}
	if m.Publish.Destination != "out/index.html" {
		t.Errorf("Publish.Destination = %q", m.Publish.Destination)
	}
	if got, want := m.ScriptPaths(), []string{filepath.Join(tmpDir, "js", "handlers.js")}; !reflect.DeepEqual(got, want) {
		t.Errorf("ScriptPaths() = %v, want %v", got, want)
	}
	if _, ok := m.Element("x-greeting"); !ok {
		t.Error("Element(x-greeting) not found")
	}
	if m.Dir() != tmpDir {
		t.Errorf("Dir() = %q", m.Dir())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		code     string
	}{
		{"bad yaml", "elements: [", "E101"},
		{"missing tag", "elements:\n  - component: counter\n", "E101"},
		{"invalid tag", "elements:\n  - tag: Counter\n    component: counter\n", "E101"},
		{"duplicate", "elements:\n  - tag: x-a\n    component: c\n  - tag: x-a\n    component: c\n", "E101"},
		{"missing component", "elements:\n  - tag: x-a\n", "E101"},
		{"theme function", "elements:\n  - tag: x-a\n    component: c\n    functions: [Theme]\n", "E101"},
		{"theme event", "elements:\n  - tag: x-a\n    component: c\n    events: [theme]\n", "E101"},
		{"port range", "server:\n  port: 70000\n", "E104"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.manifest))
			if got := errors.CodeOf(err); got != tt.code {
				t.Errorf("code = %q, want %q (err %v)", got, tt.code, err)
			}
		})
	}
}

func TestParseThemeAttribute(t *testing.T) {
	m, err := Parse([]byte("elements:\n  - tag: x-a\n    component: c\n    attributes: [theme, name]\n"))
	if err != nil {
		t.Fatalf("theme as data attribute: %v", err)
	}
	el, _ := m.Element("x-a")
	if len(el.Attributes) != 2 || el.Attributes[0] != "theme" {
		t.Errorf("attributes = %v", el.Attributes)
	}
}

func TestParseEmpty(t *testing.T) {
	m, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Elements) != 0 || m.Server.Port != DefaultPort {
		t.Errorf("empty manifest = %+v", m)
	}
	if m.Dir() != "." {
		t.Errorf("Dir() = %q", m.Dir())
	}
}
