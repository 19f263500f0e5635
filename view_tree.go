package boxlayout

// AddChild appends children to this View.
func (v *View) AddChild(children ...*View) {
	for _, child := range children {
		if child.parent != nil {
			child.parent.RemoveChild(child)
		}
		child.parent = v
		v.children = append(v.children, child)
	}
	v.MarkDirty()
}

// RemoveChild removes a child from this View, keeping sibling order.
// Returns true if the child was found and removed.
func (v *View) RemoveChild(child *View) bool {
	for i, c := range v.children {
		if c == child {
			v.children = append(v.children[:i], v.children[i+1:]...)
			child.parent = nil
			v.MarkDirty()
			return true
		}
	}
	return false
}

// RemoveAllChildren removes all children from this View.
func (v *View) RemoveAllChildren() {
	for _, child := range v.children {
		child.parent = nil
	}
	v.children = nil
	v.MarkDirty()
}

// Children returns the child views.
func (v *View) Children() []*View {
	return v.children
}

// Parent returns the parent view, or nil if this is the root.
func (v *View) Parent() *View {
	return v.parent
}

// Walk calls fn for v and every descendant in depth-first order.
// Returning false from fn skips the view's children.
func (v *View) Walk(fn func(*View) bool) {
	if !fn(v) {
		return
	}
	for _, child := range v.children {
		child.Walk(fn)
	}
}

// Find returns the first view in the subtree with the given id, or nil.
func (v *View) Find(id string) *View {
	var found *View
	v.Walk(func(n *View) bool {
		if found != nil {
			return false
		}
		if n.id == id {
			found = n
			return false
		}
		return true
	})
	return found
}
