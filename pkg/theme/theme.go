// Package theme provides the theming wrapper for custom elements.
//
// The wrapper injects a host reset style into the element's rendering
// boundary and scopes a set of CSS custom properties to the component:
//
//	element.Define(doc.Registry(), element.Options{
//	    TagName: "my-card",
//	    Render:  card,
//	    Wrapper: theme.Wrapper,
//	})
//
// The theme is chosen by the element's theme attribute. "mui-light" and
// "mui-dark" select a fixed palette; any other value, or no attribute,
// selects the CSS variables theme, which follows prefers-color-scheme.
package theme

import (
	"fmt"
	"sort"
	"strings"
)

// Brightness indicates if a palette is light or dark.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

// String returns the CSS color-scheme keyword.
func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// ColorScheme is a palette of CSS colors.
type ColorScheme struct {
	Primary      string
	OnPrimary    string
	Secondary    string
	Background   string
	OnBackground string
	Surface      string
	OnSurface    string
	Error        string
	Divider      string
}

// LightColorScheme returns the default light palette.
func LightColorScheme() ColorScheme {
	return ColorScheme{
		Primary:      "#1976d2",
		OnPrimary:    "#ffffff",
		Secondary:    "#9c27b0",
		Background:   "#ffffff",
		OnBackground: "rgba(0, 0, 0, 0.87)",
		Surface:      "#ffffff",
		OnSurface:    "rgba(0, 0, 0, 0.87)",
		Error:        "#d32f2f",
		Divider:      "rgba(0, 0, 0, 0.12)",
	}
}

// DarkColorScheme returns the default dark palette.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Primary:      "#90caf9",
		OnPrimary:    "rgba(0, 0, 0, 0.87)",
		Secondary:    "#ce93d8",
		Background:   "#121212",
		OnBackground: "#ffffff",
		Surface:      "#121212",
		OnSurface:    "#ffffff",
		Error:        "#f44336",
		Divider:      "rgba(255, 255, 255, 0.12)",
	}
}

// Variables returns the palette as CSS custom properties.
func (c ColorScheme) Variables() map[string]string {
	return map[string]string{
		"--wc-palette-primary":       c.Primary,
		"--wc-palette-on-primary":    c.OnPrimary,
		"--wc-palette-secondary":     c.Secondary,
		"--wc-palette-background":    c.Background,
		"--wc-palette-on-background": c.OnBackground,
		"--wc-palette-surface":       c.Surface,
		"--wc-palette-on-surface":    c.OnSurface,
		"--wc-palette-error":         c.Error,
		"--wc-palette-divider":       c.Divider,
	}
}

// Names of the built-in themes.
const (
	NameLight   = "mui-light"
	NameDark    = "mui-dark"
	NameCSSVars = "css-vars"
)

// Theme is a named palette. A CSS variables theme carries both schemes and
// lets the user agent pick one.
type Theme struct {
	Name       string
	Brightness Brightness
	Colors     ColorScheme

	CSSVariables bool
	Dark         ColorScheme
}

// Light returns the fixed light theme.
func Light() Theme {
	return Theme{Name: NameLight, Brightness: BrightnessLight, Colors: LightColorScheme()}
}

// DarkTheme returns the fixed dark theme.
func DarkTheme() Theme {
	return Theme{Name: NameDark, Brightness: BrightnessDark, Colors: DarkColorScheme()}
}

// CSSVars returns the theme following the user's color scheme preference.
func CSSVars() Theme {
	return Theme{
		Name:         NameCSSVars,
		Brightness:   BrightnessLight,
		Colors:       LightColorScheme(),
		CSSVariables: true,
		Dark:         DarkColorScheme(),
	}
}

// Resolve maps a theme attribute value to a theme. Unknown or empty names
// resolve to the CSS variables theme.
func Resolve(name string) Theme {
	switch name {
	case NameLight:
		return Light()
	case NameDark:
		return DarkTheme()
	default:
		return CSSVars()
	}
}

// CSS returns the stylesheet scoping the theme to the shadow host.
func (t Theme) CSS() string {
	var b strings.Builder
	writeBlock(&b, ":host", t.Brightness, t.Colors.Variables())
	if t.CSSVariables {
		b.WriteString("@media (prefers-color-scheme: dark){")
		writeBlock(&b, ":host", BrightnessDark, t.Dark.Variables())
		b.WriteString("}")
	}
	return b.String()
}

func writeBlock(b *strings.Builder, selector string, brightness Brightness, vars map[string]string) {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(b, "%s{color-scheme:%s;", selector, brightness)
	for _, name := range names {
		fmt.Fprintf(b, "%s:%s;", name, vars[name])
	}
	b.WriteString("}")
}
