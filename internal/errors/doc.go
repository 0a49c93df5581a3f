// Package errors provides coded, structured errors for wcbridge's outer
// surfaces: element definitions, manifests, publishing and the dev host.
//
// Every error carries a registered code, a category, a short message and
// optionally a detail, a suggestion and a wrapped cause:
//
//	err := errors.New("E101").
//	    WithDetail("elements[2].tag is empty").
//	    WithSuggestion("Give every element a hyphenated tag such as my-counter")
//
// errors.Is matches two coded errors with the same code, so callers can test
// for a condition without holding the exact value:
//
//	if stderrors.Is(err, errors.New("E100")) { ... }
//
// The core adapter layer never returns these: attribute content cannot make
// it fail.
package errors
