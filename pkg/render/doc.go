// Package render turns vdom trees into HTML and provides the default
// render root used by custom elements.
//
// A Root is bound to a shadow root. Render expands components, diffs the
// result against the previous tree and rewrites the shadow root markup only
// when something changed:
//
//	root := render.CreateRoot(shadow)
//	root.Render(tree)
//	root.Unmount()
package render
