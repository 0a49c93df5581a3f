package vdom

// Expand returns a copy of the tree with every component node replaced by
// its expanded render output. Components rendering nil disappear.
func Expand(node *VNode) *VNode {
	if node == nil {
		return nil
	}
	if node.Kind == KindComponent {
		if node.Comp == nil {
			return nil
		}
		return Expand(node.Comp.Render())
	}

	out := *node
	out.Children = nil
	for _, c := range node.Children {
		if e := Expand(c); e != nil {
			out.Children = append(out.Children, e)
		}
	}
	return &out
}
