// Package coerce turns raw attribute strings into typed values.
//
// Every function is total: values that are not cleanly boolean, JSON or
// numeric come back as the original string. Nothing here returns an error.
//
// # Precedence
//
// ParseValue tries, in order:
//
//	""  "true"  "false"      -> bool
//	{...}  [...]             -> parsed JSON (map[string]any, []any), or the string if invalid
//	"42"  "3.14"  "0x10"     -> float64
//	anything else            -> string
//
// A bare attribute (empty value) is boolean true, following the HTML convention.
package coerce
