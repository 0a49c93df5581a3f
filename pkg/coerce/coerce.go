package coerce

import (
	"encoding/json"
	"strings"
)

// IsBoolean reports whether v is an attribute-encoded boolean.
func IsBoolean(v string) bool {
	return v == "" || v == "true" || v == "false"
}

// ParseBoolean decodes an attribute-encoded boolean. Only meaningful when
// IsBoolean(v) holds.
func ParseBoolean(v string) bool {
	return v == "" || v == "true"
}

// IsJSON is a boundary check, not a validity check: `["]` passes.
func IsJSON(v string) bool {
	return (strings.HasPrefix(v, "{") && strings.HasSuffix(v, "}")) ||
		(strings.HasPrefix(v, "[") && strings.HasSuffix(v, "]"))
}

// ParseJSON decodes v strictly. On failure v is returned unchanged.
func ParseJSON(v string) any {
	var out any
	if err := json.Unmarshal([]byte(v), &out); err != nil {
		return v
	}
	return out
}

// ParseValue coerces a raw attribute value. See the package documentation
// for the precedence rules.
func ParseValue(v string) any {
	if IsBoolean(v) {
		return ParseBoolean(v)
	}
	if IsJSON(v) {
		return ParseJSON(v)
	}
	if n, ok := ParseNumber(v); ok {
		return n
	}
	return v
}

// ParseAttribute is ParseValue for attributes that may be absent. An absent
// attribute yields nil.
func ParseAttribute(v string, present bool) any {
	if !present {
		return nil
	}
	return ParseValue(v)
}
