package coerce

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// decimalLiteral matches the decimal forms accepted by the platform number
// conversion. strconv.ParseFloat alone is too lenient ("inf", "1_0", "0x1p3").
var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseNumber converts v the way the DOM platform converts strings to
// numbers. The boolean result is false when the conversion is not-a-number.
func ParseNumber(v string) (float64, bool) {
	s := strings.TrimFunc(v, isNumberSpace)
	if s == "" {
		return 0, true
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			return parseRadix(s[2:], base)
		}
	}

	if !decimalLiteral.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Out of range still yields ±Inf or 0, matching the platform.
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f, true
		}
		return 0, false
	}
	return f, true
}

func parseRadix(digits string, base int) (float64, bool) {
	var n float64
	for _, r := range digits {
		d, ok := digitValue(r)
		if !ok || d >= base {
			return 0, false
		}
		n = n*float64(base) + float64(d)
	}
	return n, true
}

func digitValue(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10, true
	}
	return 0, false
}

func isNumberSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
