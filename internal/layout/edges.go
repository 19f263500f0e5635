package layout

// Edges represents values for four sides of a box.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() int {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() int {
	return e.Top + e.Bottom
}

// Leading returns the edge at the start of the given axis (Left or Top).
func (e Edges) Leading(axis Orientation) int {
	if axis == Horizontal {
		return e.Left
	}
	return e.Top
}

// Trailing returns the edge at the end of the given axis (Right or Bottom).
func (e Edges) Trailing(axis Orientation) int {
	if axis == Horizontal {
		return e.Right
	}
	return e.Bottom
}

// Sum returns Leading + Trailing on the given axis.
func (e Edges) Sum(axis Orientation) int {
	return e.Leading(axis) + e.Trailing(axis)
}

// Add returns the side-wise sum of e and other.
func (e Edges) Add(other Edges) Edges {
	return Edges{
		Top:    e.Top + other.Top,
		Right:  e.Right + other.Right,
		Bottom: e.Bottom + other.Bottom,
		Left:   e.Left + other.Left,
	}
}
