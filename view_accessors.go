package boxlayout

import "strings"

// ID returns the identifier set with WithID.
func (v *View) ID() string {
	return v.id
}

// Orientation returns the axis children are laid out along.
func (v *View) Orientation() Orientation {
	return v.orientation
}

// SetOrientation changes the layout axis. Switching invalidates every
// child position, so the view is marked dirty.
func (v *View) SetOrientation(o Orientation) {
	if v.orientation == o {
		return
	}
	v.orientation = o
	v.MarkDirty()
}

// IsHorizontal returns true if children are laid out left-to-right.
func (v *View) IsHorizontal() bool {
	return v.orientation == Horizontal
}

// SetHorizontal is SetOrientation(Horizontal).
func (v *View) SetHorizontal() {
	v.SetOrientation(Horizontal)
}

// IsVertical returns true if children are laid out top-to-bottom.
func (v *View) IsVertical() bool {
	return v.orientation == Vertical
}

// SetVertical is SetOrientation(Vertical).
func (v *View) SetVertical() {
	v.SetOrientation(Vertical)
}

// SetVisibility changes the visibility. The parent is re-laid out because
// collapsing a view frees its space.
func (v *View) SetVisibility(vis Visibility) {
	if v.visibility == vis {
		return
	}
	v.visibility = vis
	v.MarkDirty()
}

// SetMargin changes the margin.
func (v *View) SetMargin(e Edges) {
	v.margin = e
	v.MarkDirty()
}

// Padding returns the padding.
func (v *View) Padding() Edges {
	return v.padding
}

// SetPadding changes the padding.
func (v *View) SetPadding(e Edges) {
	v.padding = e
	v.MarkDirty()
}

// WidthMode returns how the width is sized.
func (v *View) WidthMode() SizeMode {
	return v.width
}

// SetWidthMode changes how the width is sized.
func (v *View) SetWidthMode(m SizeMode) {
	v.width = m
	v.MarkDirty()
}

// HeightMode returns how the height is sized.
func (v *View) HeightMode() SizeMode {
	return v.height
}

// SetHeightMode changes how the height is sized.
func (v *View) SetHeightMode(m SizeMode) {
	v.height = m
	v.MarkDirty()
}

// Label returns the label text.
func (v *View) Label() string {
	return v.label
}

// SetLabel changes the label text.
func (v *View) SetLabel(s string) {
	v.label = s
	v.MarkDirty()
}

// Border returns the border style.
func (v *View) Border() BorderStyle {
	return v.border
}

// SetBorder changes the border style. A border takes space, so the view is
// re-laid out when it appears or disappears.
func (v *View) SetBorder(b BorderStyle) {
	if (v.border == BorderNone) != (b == BorderNone) {
		v.MarkDirty()
	}
	v.border = b
}

// labelSize returns the display size of the label in cells.
// Each line of a multi-line label is measured separately.
func labelSize(s string) Size {
	if s == "" {
		return Size{}
	}
	lines := strings.Split(s, "\n")
	width := 0
	for _, line := range lines {
		width = max(width, StringWidth(line))
	}
	return Size{Width: width, Height: len(lines)}
}
