// Package element exposes a vdom component as a custom element.
//
// A Definition describes the element: its tag, the attributes it maps to
// component properties and the component's render function. Define
// registers it with a document's registry; the platform then constructs an
// Instance for every element with that tag and drives its lifecycle.
//
// # Attribute categories
//
// Declared attributes fall into three kinds:
//
//	Data      "count", "config"      coerced to bool, JSON, number or string
//	Function  "onSave"               names a global callable, resolved per call
//	Event     "onChange"             dispatches a bubbling, composed DOM event
//
// DOM attribute names are matched case-insensitively; property keys keep
// the declared casing. The "theme" attribute is never mapped and reaches
// the wrapper separately.
//
// # Lifecycle
//
//	Unattached --connect--> Connected --disconnect--> Disconnected
//	                        |   ^                          |
//	                 attribute changed               reconnect
//	                        v   |                          |
//	                       re-render  <--------------------'
//
// Each attribute change that alters a value rebuilds the entire property
// set and renders once, synchronously.
package element
