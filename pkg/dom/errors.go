package dom

import "errors"

var (
	// ErrInvalidName is returned when a custom element name does not
	// follow the platform naming rules.
	ErrInvalidName = errors.New("dom: invalid custom element name")

	// ErrAlreadyDefined is returned when a name is defined twice.
	ErrAlreadyDefined = errors.New("dom: custom element already defined")

	// ErrShadowAttached is returned when an element already hosts a shadow root.
	ErrShadowAttached = errors.New("dom: element already hosts a shadow root")

	// ErrHierarchy is returned when an insertion would create a cycle.
	ErrHierarchy = errors.New("dom: hierarchy request error")
)
