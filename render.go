package boxlayout

import "strings"

// Render draws the laid-out tree rooted at root on the canvas: borders first,
// then labels, then children. Invisible and collapsed views are skipped along
// with their subtrees. Each view is clipped to its parent's content area.
func Render(c *Canvas, root *View) {
	if root == nil {
		return
	}
	renderView(c, root, 0, 0, c.Rect())
}

// renderView draws v whose frame is relative to (ox, oy) on the canvas.
func renderView(c *Canvas, v *View, ox, oy int, clip Rect) {
	if v.visibility != Visible {
		return
	}

	screen := v.frame.Translate(ox, oy)
	visible := screen.Intersect(clip)
	if visible.IsEmpty() {
		return
	}

	if v.border != BorderNone && screen == visible {
		DrawBox(c, screen, v.border)
	}

	content := v.ContentRect().Translate(screen.X, screen.Y)
	inner := content.Intersect(visible)
	if v.label != "" {
		for i, line := range strings.Split(v.label, "\n") {
			c.SetString(content.X, content.Y+i, line, inner)
		}
	}

	for _, child := range v.children {
		renderView(c, child, screen.X, screen.Y, inner)
	}
}

// RenderString lays out root in a width x height viewport and returns the
// drawing as text.
func RenderString(root *View, width, height int) string {
	root.Layout(width, height)
	c := NewCanvas(width, height)
	Render(c, root)
	return c.String()
}
