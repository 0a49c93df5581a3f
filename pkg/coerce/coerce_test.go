package coerce

import (
	"math"
	"reflect"
	"testing"
)

func TestIsBoolean(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"true", true},
		{"false", true},
		{"True", false},
		{"FALSE", false},
		{"0", false},
		{"1", false},
		{" true", false},
	}

	for _, tt := range tests {
		if got := IsBoolean(tt.in); got != tt.want {
			t.Errorf("IsBoolean(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseBoolean(t *testing.T) {
	if !ParseBoolean("") {
		t.Error(`ParseBoolean("") = false, want true`)
	}
	if !ParseBoolean("true") {
		t.Error(`ParseBoolean("true") = false, want true`)
	}
	if ParseBoolean("false") {
		t.Error(`ParseBoolean("false") = true, want false`)
	}
}

func TestIsJSON(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{`{"a":1}`, true},
		{`[1,2,3]`, true},
		{`["]`, true},
		{`{}`, true},
		{`{`, false},
		{`[`, false},
		{`{]`, false},
		{`true`, false},
		{``, false},
		{` {"a":1}`, false},
	}

	for _, tt := range tests {
		if got := IsJSON(tt.in); got != tt.want {
			t.Errorf("IsJSON(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseJSON(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got := ParseJSON(`{"a":1}`)
		want := map[string]any{"a": float64(1)}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ParseJSON = %#v, want %#v", got, want)
		}

		arr := ParseJSON(`[1,2]`)
		if !reflect.DeepEqual(arr, []any{float64(1), float64(2)}) {
			t.Errorf("ParseJSON array = %#v", arr)
		}
	})

	t.Run("invalid returns input", func(t *testing.T) {
		for _, in := range []string{"not-json", "{invalid}", `["]`, `{"a":1} trailing`} {
			if got := ParseJSON(in); got != in {
				t.Errorf("ParseJSON(%q) = %#v, want input unchanged", in, got)
			}
		}
	})
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"42", 42, true},
		{"3.14", 3.14, true},
		{"-7", -7, true},
		{"+7", 7, true},
		{".5", 0.5, true},
		{"5.", 5, true},
		{"1e3", 1000, true},
		{"1E-2", 0.01, true},
		{"  12  ", 12, true},
		{" ", 0, true},
		{"0x10", 16, true},
		{"0o17", 15, true},
		{"0b101", 5, true},
		{"Infinity", math.Inf(1), true},
		{"-Infinity", math.Inf(-1), true},
		{"42px", 0, false},
		{"NaN", 0, false},
		{"inf", 0, false},
		{"1_000", 0, false},
		{"0x", 0, false},
		{"-0x10", 0, false},
		{"0b102", 0, false},
		{"abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseNumber(tt.in)
			if ok != tt.ok {
				t.Fatalf("ParseNumber(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseNumber(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseValuePrecedence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want any
	}{
		{"bare attribute", "", true},
		{"true", "true", true},
		{"false", "false", false},
		{"object", `{"x":2}`, map[string]any{"x": float64(2)}},
		{"array", `[3,4]`, []any{float64(3), float64(4)}},
		{"integer", "42", float64(42)},
		{"float", "3.14", 3.14},
		{"unit suffix", "42px", "42px"},
		{"malformed json", "{invalid}", "{invalid}"},
		{"plain string", "hello", "hello"},
		{"capitalised boolean", "True", "True"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseValue(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseValue(%q) = %#v (%T), want %#v (%T)", tt.in, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestParseAttributeAbsent(t *testing.T) {
	if got := ParseAttribute("", false); got != nil {
		t.Errorf("ParseAttribute(absent) = %#v, want nil", got)
	}
	if got := ParseAttribute("", true); got != true {
		t.Errorf("ParseAttribute(\"\", present) = %#v, want true", got)
	}
	if got := ParseAttribute("7", true); got != float64(7) {
		t.Errorf("ParseAttribute(\"7\") = %#v, want 7", got)
	}
}
