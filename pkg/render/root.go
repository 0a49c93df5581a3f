package render

import (
	"bytes"
	"log/slog"

	"github.com/vango-dev/wcbridge/pkg/dom"
	"github.com/vango-dev/wcbridge/pkg/vdom"
)

// Root renders vdom trees into a shadow root. After Unmount the root
// ignores further renders.
type Root struct {
	target    *dom.ShadowRoot
	tree      *vdom.VNode
	unmounted bool

	commits     int
	lastPatches int

	logger *slog.Logger
}

// CreateRoot binds a root to target.
func CreateRoot(target *dom.ShadowRoot) *Root {
	return &Root{
		target: target,
		logger: slog.Default().With("component", "render-root"),
	}
}

// Render reconciles node into the shadow root. The markup is rewritten only
// when the expanded tree differs from the last committed one.
func (r *Root) Render(node *vdom.VNode) {
	if r.unmounted || r.target == nil {
		return
	}

	tree := vdom.Expand(node)
	patches := vdom.Diff(r.tree, tree)
	r.lastPatches = len(patches)
	if r.commits > 0 && len(patches) == 0 {
		return
	}

	var buf bytes.Buffer
	if err := renderNode(&buf, tree, false); err != nil {
		r.logger.Warn("render failed", "host", r.target.Host().TagName(), "error", err)
		return
	}
	r.target.SetInnerHTML(buf.String())
	r.tree = tree
	r.commits++
}

// Unmount clears the shadow root and releases the committed tree.
func (r *Root) Unmount() {
	if r.unmounted {
		return
	}
	r.unmounted = true
	r.tree = nil
	if r.target != nil {
		r.target.SetInnerHTML("")
	}
}

// Tree returns the last committed tree.
func (r *Root) Tree() *vdom.VNode { return r.tree }

// Commits returns how many times the markup was rewritten.
func (r *Root) Commits() int { return r.commits }

// LastPatchCount returns the number of patches computed by the last Render.
func (r *Root) LastPatchCount() int { return r.lastPatches }

// Unmounted reports whether Unmount has been called.
func (r *Root) Unmounted() bool { return r.unmounted }
