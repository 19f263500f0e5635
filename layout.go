// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package boxlayout

import "github.com/grindlemire/go-boxlayout/internal/layout"

// Orientation selects the axis children are laid out along.
type Orientation = layout.Orientation

const (
	Horizontal = layout.Horizontal
	Vertical   = layout.Vertical
)

// Visibility controls whether a view is drawn and whether it takes space.
type Visibility = layout.Visibility

const (
	Visible   = layout.Visible
	Invisible = layout.Invisible
	Collapsed = layout.Collapsed
)

// SizeMode governs a view's length along one axis.
type SizeMode = layout.SizeMode

// Mode specifies how a SizeMode is interpreted.
type Mode = layout.Mode

const (
	ModeFixed = layout.ModeFixed
	ModeWrap  = layout.ModeWrap
	ModeFill  = layout.ModeFill
)

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// Node is the interface the layout engine works with.
type Node = layout.Node

// Container describes the box whose children are laid out by Linear.
type Container = layout.Container

// Result reports what a Linear pass computed.
type Result = layout.Result

// Fixed creates a SizeMode with an absolute length.
func Fixed(n int) SizeMode {
	return layout.Fixed(n)
}

// Wrap creates a SizeMode that sizes to content.
func Wrap() SizeMode {
	return layout.Wrap()
}

// Fill creates a SizeMode that claims remaining space with the given weight.
func Fill(weight float64) SizeMode {
	return layout.Fill(weight)
}

// NewRect creates a Rect.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical and horizontal values.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges in Top, Right, Bottom, Left order.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// Linear lays out nodes along the container's primary axis.
// See layout.Linear for the distribution rules.
func Linear(c Container, children []Node) Result {
	return layout.Linear(c, children)
}
