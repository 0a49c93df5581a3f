package errors

import "strings"

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
)

var colorEnabled = true

// DisableColors disables ANSI color output.
func DisableColors() { colorEnabled = false }

// EnableColors enables ANSI color output.
func EnableColors() { colorEnabled = true }

func color(code, text string) string {
	if !colorEnabled {
		return text
	}
	return code + text + colorReset
}

// Format returns the error laid out for terminal display.
func (e *Error) Format() string {
	var b strings.Builder
	header := "ERROR"
	if e.Code != "" {
		header += " " + e.Code
	}
	b.WriteString(color(colorRed+colorBold, header+": "))
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Detail != "" {
		b.WriteString("  " + e.Detail + "\n")
	}
	if e.Wrapped != nil {
		b.WriteString("  cause: " + e.Wrapped.Error() + "\n")
	}
	if e.Suggestion != "" {
		b.WriteString(color(colorYellow, "  hint: ") + e.Suggestion + "\n")
	}
	return b.String()
}
