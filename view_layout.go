package boxlayout

import (
	"go.uber.org/zap"

	"github.com/grindlemire/go-boxlayout/internal/debug"
	"github.com/grindlemire/go-boxlayout/internal/layout"
)

// --- Implement Node interface ---

// Visibility returns whether the view is drawn and laid out.
func (v *View) Visibility() Visibility {
	return v.visibility
}

// Margin returns the space kept around the view.
func (v *View) Margin() Edges {
	return v.margin
}

// SizeMode returns how the view is sized along the given axis.
func (v *View) SizeMode(axis Orientation) SizeMode {
	if axis == Horizontal {
		return v.width
	}
	return v.height
}

// Frame returns the computed frame in the parent's coordinates.
func (v *View) Frame() Rect {
	return v.frame
}

// SetFrame is called by the layout engine to store the computed frame.
func (v *View) SetFrame(r Rect) {
	v.frame = r
}

// ForceUpdateLayout re-lays out the subtree immediately. The layout engine
// calls it after assigning the view a new size.
func (v *View) ForceUpdateLayout() {
	v.dirty = true
	v.UpdateLayout()
}

// IsDirty returns whether this view needs layout.
func (v *View) IsDirty() bool {
	return v.dirty
}

// MarkDirty marks this view and all ancestors as needing layout.
func (v *View) MarkDirty() {
	for n := v; n != nil; n = n.parent {
		n.dirty = true
	}
}

// Layout lays out the tree rooted at v inside a viewport of the given size.
// Fixed axes keep their length, Wrap axes take the measured content size and
// Fill axes take the viewport (scaled by the weight when it is not 1).
// Only dirty views are recomputed.
func (v *View) Layout(width, height int) {
	if v.visibility == Collapsed {
		return
	}

	frame := Rect{X: v.margin.Left, Y: v.margin.Top}
	frame.Width = v.rootLength(Horizontal, width-v.margin.Horizontal())
	frame.Height = v.rootLength(Vertical, height-v.margin.Vertical())
	if frame != v.frame {
		v.frame = frame
		v.dirty = true
	}

	if v.dirty {
		v.UpdateLayout()
	}
}

// rootLength resolves the root's length on axis against the viewport.
func (v *View) rootLength(axis Orientation, available int) int {
	mode := v.SizeMode(axis)
	switch {
	case mode.Kind() == ModeFixed:
		return mode.Length()
	case mode.Kind() == ModeWrap:
		return v.measure(axis)
	case mode.IsFullFill():
		return max(available, 0)
	default:
		return max(int(float64(max(available, 0))*mode.Weight()), 0)
	}
}

// UpdateLayout lays out the children inside the view's current frame and
// clears the dirty flag.
//
// On the cross axis each child fills the content area, keeps its fixed
// length, or wraps its content. On the primary axis non-filling children are
// measured and the distribution is left to layout.Linear, with the content
// length (frame minus border and padding) as the container length. Children that are
// still dirty afterwards are laid out recursively.
func (v *View) UpdateLayout() {
	axis := v.orientation
	cross := axis.Cross()
	insets := v.insets()
	crossSpace := v.frame.Length(cross) - insets.Sum(cross)

	nodes := make([]layout.Node, 0, len(v.children))
	for _, child := range v.children {
		if child.visibility == Collapsed {
			continue
		}

		frame := child.frame
		if mode := child.SizeMode(axis); !mode.IsFill() {
			frame.SetLength(axis, child.contentLength(axis))
		}
		if child.SizeMode(cross).IsFill() {
			frame.SetLength(cross, max(crossSpace-child.margin.Sum(cross), 0))
		} else {
			frame.SetLength(cross, child.contentLength(cross))
		}
		frame.SetOrigin(cross, insets.Leading(cross)+child.margin.Leading(cross))

		if frame.Size() != child.frame.Size() {
			child.dirty = true
		}
		child.frame = frame
		nodes = append(nodes, child)
	}

	res := layout.Linear(layout.Container{
		Orientation: axis,
		Length:      max(v.frame.Length(axis)-insets.Sum(axis), 0),
		Padding:     insets,
	}, nodes)

	if v.SizeMode(axis).Kind() == ModeWrap {
		v.frame.SetLength(axis, max(res.Extent, 0))
	} else if res.Extent > v.frame.Length(axis) {
		debug.Logger().Debug("children overflow view",
			zap.String("view", v.id),
			zap.Stringer("orientation", axis),
			zap.Int("extent", res.Extent),
			zap.Int("length", v.frame.Length(axis)))
	}
	if v.SizeMode(cross).Kind() == ModeWrap {
		v.frame.SetLength(cross, v.measure(cross))
	}
	if res.Relayouts > 0 {
		debug.Logger().Debug("forced child relayout",
			zap.String("view", v.id),
			zap.Int("children", res.Relayouts))
	}

	v.dirty = false
	for _, child := range v.children {
		if child.visibility != Collapsed && child.dirty {
			child.UpdateLayout()
		}
	}
}

// contentLength returns the length of a non-filling view on axis.
func (v *View) contentLength(axis Orientation) int {
	if mode := v.SizeMode(axis); mode.Kind() == ModeFixed {
		return mode.Length()
	}
	return v.measure(axis)
}

// MeasureWrap returns the size the view needs to wrap its content.
func (v *View) MeasureWrap() (width, height int) {
	return v.measure(Horizontal), v.measure(Vertical)
}

// measure returns the length v needs on axis to wrap its content.
// Leaves measure their label. Containers sum their children on the primary
// axis and take the largest child on the cross axis, margins included.
// Fill children contribute only their margins on the primary axis because a
// wrapping container has no space left to share.
func (v *View) measure(axis Orientation) int {
	inset := v.insets().Sum(axis)

	if !v.hasLayoutChildren() {
		size := labelSize(v.label)
		if axis == Horizontal {
			return max(size.Width+inset, 0)
		}
		return max(size.Height+inset, 0)
	}

	content := 0
	for _, child := range v.children {
		if child.visibility == Collapsed {
			continue
		}
		outer := child.margin.Sum(axis)
		mode := child.SizeMode(axis)
		if axis == v.orientation {
			if !mode.IsFill() {
				outer += child.contentLength(axis)
			}
			content += outer
			continue
		}
		if mode.Kind() == ModeFixed {
			outer += mode.Length()
		} else {
			outer += child.measure(axis)
		}
		content = max(content, outer)
	}
	return max(content+inset, 0)
}

// hasLayoutChildren reports whether any child takes part in layout.
func (v *View) hasLayoutChildren() bool {
	for _, child := range v.children {
		if child.visibility != Collapsed {
			return true
		}
	}
	return false
}

// insets returns the padding plus one cell per side for a border.
func (v *View) insets() Edges {
	if v.border == BorderNone {
		return v.padding
	}
	return v.padding.Add(EdgeAll(1))
}

// Bounds returns the frame in root coordinates.
func (v *View) Bounds() Rect {
	r := v.frame
	for p := v.parent; p != nil; p = p.parent {
		r = r.Translate(p.frame.X, p.frame.Y)
	}
	return r
}

// ViewAt returns the deepest visible view whose bounds contain the point
// (x, y) in root coordinates, or nil. Later siblings win where they overlap.
func (v *View) ViewAt(x, y int) *View {
	if v.visibility != Visible || !v.Bounds().Contains(x, y) {
		return nil
	}
	for i := len(v.children) - 1; i >= 0; i-- {
		if hit := v.children[i].ViewAt(x, y); hit != nil {
			return hit
		}
	}
	return v
}

// ContentRect returns the area inside the border and padding, relative to
// the view's own origin.
func (v *View) ContentRect() Rect {
	return NewRect(0, 0, v.frame.Width, v.frame.Height).Inset(v.insets())
}
