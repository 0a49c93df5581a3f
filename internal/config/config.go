package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/wcbridge/internal/errors"
	"github.com/vango-dev/wcbridge/pkg/dom"
	"github.com/vango-dev/wcbridge/pkg/element"
)

const (
	// ManifestFileName is the name of the manifest file.
	ManifestFileName = "wcbridge.yaml"

	// DefaultPort is the default development host port.
	DefaultPort = 7070

	// DefaultHost is the default development host interface.
	DefaultHost = "localhost"

	// DefaultWrapper is the wrapper used when an element names none.
	DefaultWrapper = "plain"
)

// Manifest is the complete wcbridge.yaml configuration.
type Manifest struct {
	// Elements are the custom elements to define.
	Elements []ElementConfig `yaml:"elements"`

	// Scripts are JavaScript files evaluated into the function scope.
	Scripts []string `yaml:"scripts,omitempty"`

	// Server configures the development host.
	Server ServerConfig `yaml:"server,omitempty"`

	// Publish configures snapshot publishing.
	Publish PublishConfig `yaml:"publish,omitempty"`

	path string
}

// ElementConfig declares one custom element.
type ElementConfig struct {
	// Tag is the custom element name.
	Tag string `yaml:"tag"`

	// Component names the render function in the component catalog.
	Component string `yaml:"component"`

	// Wrapper names the wrapper: plain, theme or a fixed theme name.
	Wrapper string `yaml:"wrapper,omitempty"`

	// Attributes are the data attributes.
	Attributes []string `yaml:"attributes,omitempty"`

	// Functions are the function attributes.
	Functions []string `yaml:"functions,omitempty"`

	// Events are the event attributes.
	Events []string `yaml:"events,omitempty"`
}

// ServerConfig configures the development host.
type ServerConfig struct {
	Host string `yaml:"host,omitempty"`
	Port int    `yaml:"port,omitempty"`

	// AllowedOrigins restricts websocket origins. Empty allows same-host
	// origins only.
	AllowedOrigins []string `yaml:"allowedOrigins,omitempty"`
}

// PublishConfig configures snapshot publishing.
type PublishConfig struct {
	// Destination is a file path, "-" or an s3:// URL.
	Destination string `yaml:"destination,omitempty"`
}

// New creates a manifest with defaults applied.
func New() *Manifest {
	m := &Manifest{}
	m.applyDefaults()
	return m
}

// Load loads wcbridge.yaml from dir.
func Load(dir string) (*Manifest, error) {
	return LoadFile(filepath.Join(dir, ManifestFileName))
}

// LoadFile loads a manifest from path, applies defaults and validates it.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E100").
				WithDetail("No manifest at " + path).
				WithSuggestion("Create " + ManifestFileName + " or pass --manifest")
		}
		return nil, errors.New("E101").Wrap(err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, err
	}
	m.path = path
	return m, nil
}

// Parse decodes a manifest, applies defaults and validates it.
func Parse(data []byte) (*Manifest, error) {
	m := &Manifest{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, errors.New("E101").
			WithDetail("Failed to parse manifest: " + err.Error()).
			WithSuggestion("Check that the manifest is valid YAML")
	}
	m.applyDefaults()
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manifest) applyDefaults() {
	if m.Server.Host == "" {
		m.Server.Host = DefaultHost
	}
	if m.Server.Port == 0 {
		m.Server.Port = DefaultPort
	}
	for i := range m.Elements {
		if m.Elements[i].Wrapper == "" {
			m.Elements[i].Wrapper = DefaultWrapper
		}
	}
}

// Validate checks the manifest structure. Component and wrapper names are
// resolved later against the catalog.
func (m *Manifest) Validate() error {
	if m.Server.Port < 0 || m.Server.Port > 65535 {
		return errors.New("E104").
			WithDetailf("Port %d must be between 0 and 65535", m.Server.Port)
	}

	seen := make(map[string]bool, len(m.Elements))
	for i, el := range m.Elements {
		where := fmt.Sprintf("elements[%d]", i)
		switch {
		case el.Tag == "":
			return errors.New("E101").WithDetail(where + ": tag is required")
		case !dom.ValidCustomElementName(el.Tag):
			return errors.New("E101").WithDetailf("%s: %q is not a valid custom element name", where, el.Tag).
				WithSuggestion("Use a lowercase name containing a hyphen, e.g. x-counter")
		case seen[el.Tag]:
			return errors.New("E101").WithDetailf("%s: tag %q declared twice", where, el.Tag)
		case el.Component == "":
			return errors.New("E101").WithDetailf("%s: component is required for %q", where, el.Tag)
		}
		seen[el.Tag] = true

		// theme may be observed as data but never bound as a channel.
		for _, name := range el.channelAttributes() {
			if strings.EqualFold(name, element.ThemeAttribute) {
				return errors.New("E101").WithDetailf("%s: %q is reserved", where, name).
					WithSuggestion("List theme under attributes to re-render on theme changes")
			}
		}
	}
	return nil
}

func (e ElementConfig) channelAttributes() []string {
	all := make([]string, 0, len(e.Functions)+len(e.Events))
	all = append(all, e.Functions...)
	return append(all, e.Events...)
}

// Element returns the configuration for tag.
func (m *Manifest) Element(tag string) (ElementConfig, bool) {
	for _, el := range m.Elements {
		if el.Tag == tag {
			return el, true
		}
	}
	return ElementConfig{}, false
}

// Path returns the path the manifest was loaded from.
func (m *Manifest) Path() string {
	return m.path
}

// Dir returns the directory containing the manifest.
func (m *Manifest) Dir() string {
	if m.path == "" {
		return "."
	}
	return filepath.Dir(m.path)
}

// ScriptPaths returns the script paths resolved against the manifest
// directory.
func (m *Manifest) ScriptPaths() []string {
	paths := make([]string, len(m.Scripts))
	for i, s := range m.Scripts {
		if filepath.IsAbs(s) {
			paths[i] = s
		} else {
			paths[i] = filepath.Join(m.Dir(), s)
		}
	}
	return paths
}

// Address returns host:port.
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// URL returns the host's base URL.
func (s ServerConfig) URL() string {
	return "http://" + s.Address()
}
