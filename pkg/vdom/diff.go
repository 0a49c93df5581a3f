package vdom

import (
	"reflect"
	"sort"
	"strconv"
)

// Diff compares two expanded trees and returns the patches that transform
// prev into next. Children are matched by position; a key or tag change
// replaces the node. Handler props (func values) never produce patches.
func Diff(prev, next *VNode) []Patch {
	var patches []Patch
	diff(prev, next, "", &patches)
	return patches
}

func diff(prev, next *VNode, path string, patches *[]Patch) {
	switch {
	case prev == nil && next == nil:
		return
	case prev == nil:
		*patches = append(*patches, Patch{Op: PatchReplaceNode, Path: path, Node: next})
		return
	case next == nil:
		*patches = append(*patches, Patch{Op: PatchRemoveNode, Path: path})
		return
	}

	if prev.Kind != next.Kind || prev.Tag != next.Tag || prev.Key != next.Key {
		*patches = append(*patches, Patch{Op: PatchReplaceNode, Path: path, Node: next})
		return
	}

	switch prev.Kind {
	case KindText:
		if prev.Text != next.Text {
			*patches = append(*patches, Patch{Op: PatchSetText, Path: path, Value: next.Text})
		}
	case KindRaw:
		if prev.Text != next.Text {
			*patches = append(*patches, Patch{Op: PatchReplaceNode, Path: path, Node: next})
		}
	case KindElement, KindFragment:
		diffProps(prev.Props, next.Props, path, patches)
		diffChildren(prev.Children, next.Children, path, patches)
	}
}

func diffProps(prev, next Props, path string, patches *[]Patch) {
	keys := make([]string, 0, len(next))
	for k := range next {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		nv := next[k]
		pv, ok := prev[k]
		if ok && propEqual(pv, nv) {
			continue
		}
		*patches = append(*patches, Patch{Op: PatchSetAttr, Path: path, Key: k, Value: nv})
	}

	removed := make([]string, 0)
	for k := range prev {
		if _, ok := next[k]; !ok {
			removed = append(removed, k)
		}
	}
	sort.Strings(removed)
	for _, k := range removed {
		*patches = append(*patches, Patch{Op: PatchRemoveAttr, Path: path, Key: k})
	}
}

func propEqual(a, b any) bool {
	ka, kb := reflect.ValueOf(a).Kind(), reflect.ValueOf(b).Kind()
	if ka == reflect.Func || kb == reflect.Func {
		return ka == kb
	}
	return reflect.DeepEqual(a, b)
}

func diffChildren(prev, next []*VNode, path string, patches *[]Patch) {
	common := min(len(prev), len(next))
	for i := 0; i < common; i++ {
		diff(prev[i], next[i], childPath(path, i), patches)
	}
	for i := common; i < len(next); i++ {
		*patches = append(*patches, Patch{Op: PatchInsertNode, Path: path, Index: i, Node: next[i]})
	}
	// Remove from the end so earlier indices stay valid.
	for i := len(prev) - 1; i >= common; i-- {
		*patches = append(*patches, Patch{Op: PatchRemoveNode, Path: childPath(path, i)})
	}
}

func childPath(parent string, i int) string {
	if parent == "" {
		return strconv.Itoa(i)
	}
	return parent + "." + strconv.Itoa(i)
}
