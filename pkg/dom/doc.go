// Package dom is a small in-memory DOM used as the platform for custom
// elements.
//
// It models the parts of the DOM that custom elements depend on: a
// document tree with connection tracking, attributes with HTML name
// folding, open and closed shadow roots, custom events that bubble and
// cross shadow boundaries when composed, and a custom element registry
// that upgrades elements and runs lifecycle reactions.
//
// Shadow root content rendered by a render root is stored as opaque
// markup; only elements appended explicitly take part in the tree.
//
// A Document and everything reachable from it must be used from a single
// goroutine at a time.
package dom
