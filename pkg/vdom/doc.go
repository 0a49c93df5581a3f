// Package vdom is the UI description produced by component render
// functions.
//
// A VNode tree is built with the variadic element constructors:
//
//	vdom.Div(vdom.Class("card"),
//	    vdom.H1(vdom.Text("Title")),
//	    vdom.Slot(),
//	)
//
// Component nodes are resolved by Expand. Diff compares two expanded trees
// and returns the patches needed to turn one into the other; render roots
// use it to skip work when a re-render produces the same tree.
package vdom
