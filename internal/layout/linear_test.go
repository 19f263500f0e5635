package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// testNode is a minimal host node. Fixed and Wrap lengths are seeded into the
// frame the way a host would before calling Linear.
type testNode struct {
	visibility Visibility
	margin     Edges
	width      SizeMode
	height     SizeMode
	frame      Rect

	relayouts  int
	onRelayout func(*testNode)
}

func newTestNode(width, height SizeMode) *testNode {
	n := &testNode{width: width, height: height}
	n.frame.Width = width.Length()
	n.frame.Height = height.Length()
	return n
}

// wrapped returns a Wrap node whose content measured w×h.
func wrapped(w, h int) *testNode {
	n := newTestNode(Wrap(), Wrap())
	n.frame.Width = w
	n.frame.Height = h
	return n
}

func (n *testNode) Visibility() Visibility { return n.visibility }
func (n *testNode) Margin() Edges          { return n.margin }
func (n *testNode) Frame() Rect            { return n.frame }
func (n *testNode) SetFrame(r Rect)        { n.frame = r }

func (n *testNode) SizeMode(axis Orientation) SizeMode {
	if axis == Horizontal {
		return n.width
	}
	return n.height
}

func (n *testNode) ForceUpdateLayout() {
	n.relayouts++
	if n.onRelayout != nil {
		n.onRelayout(n)
	}
}

func nodes(children ...*testNode) []Node {
	result := make([]Node, len(children))
	for i, child := range children {
		result[i] = child
	}
	return result
}

func frames(children ...*testNode) []Rect {
	result := make([]Rect, len(children))
	for i, child := range children {
		result[i] = child.frame
	}
	return result
}

func TestLinear_FullFillEqualSplit(t *testing.T) {
	a := newTestNode(Fill(1), Fixed(10))
	b := newTestNode(Fill(1), Fixed(10))
	c := newTestNode(Fill(1), Fixed(10))

	res := Linear(Container{Orientation: Horizontal, Length: 300}, nodes(a, b, c))

	want := []Rect{
		NewRect(0, 0, 100, 10),
		NewRect(100, 0, 100, 10),
		NewRect(200, 0, 100, 10),
	}
	if diff := cmp.Diff(want, frames(a, b, c)); diff != "" {
		t.Errorf("frames mismatch (-want +got):\n%s", diff)
	}
	if res.Extent != 300 {
		t.Errorf("Extent = %d, want 300", res.Extent)
	}
	if res.Overflow {
		t.Error("Overflow = true, want false")
	}
}

func TestLinear_PartialFillIndependence(t *testing.T) {
	fixed := newTestNode(Fixed(50), Fixed(10))
	partial := newTestNode(Fill(0.5), Fixed(10))
	full := newTestNode(Fill(1), Fixed(10))

	res := Linear(Container{Orientation: Horizontal, Length: 200}, nodes(fixed, partial, full))

	want := []Rect{
		NewRect(0, 0, 50, 10),
		NewRect(50, 0, 75, 10),
		NewRect(125, 0, 75, 10),
	}
	if diff := cmp.Diff(want, frames(fixed, partial, full)); diff != "" {
		t.Errorf("frames mismatch (-want +got):\n%s", diff)
	}
	if res.Consumed != 200 {
		t.Errorf("Consumed = %d, want 200", res.Consumed)
	}
}

func TestLinear_PartialFillConsumesInOrder(t *testing.T) {
	type tc struct {
		weights []float64
		length  int
		want    []int
	}

	tests := map[string]tc{
		"halves shrink the remainder": {
			weights: []float64{0.5, 0.5},
			length:  100,
			want:    []int{50, 25},
		},
		"weights are not normalized": {
			weights: []float64{2, 0.5},
			length:  100,
			want:    []int{200, 0},
		},
		"truncates toward zero": {
			weights: []float64{0.33, 0.33},
			length:  10,
			want:    []int{3, 2},
		},
		"zero weight gets nothing": {
			weights: []float64{0, 0.5},
			length:  80,
			want:    []int{0, 40},
		},
		"negative weight clamps to zero": {
			weights: []float64{-0.5, 0.25},
			length:  80,
			want:    []int{0, 20},
		},
		"huge weight is capped": {
			weights: []float64{1e300, 0.5},
			length:  100,
			want:    []int{maxFillLength, 0},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			children := make([]*testNode, len(tt.weights))
			for i, w := range tt.weights {
				children[i] = newTestNode(Fill(w), Fixed(1))
			}
			Linear(Container{Orientation: Horizontal, Length: tt.length}, nodes(children...))

			got := make([]int, len(children))
			for i, child := range children {
				got[i] = child.frame.Width
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("widths mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLinear_FullFillDropsRemainder(t *testing.T) {
	a := newTestNode(Fill(1), Fixed(1))
	b := newTestNode(Fill(1), Fixed(1))
	c := newTestNode(Fill(1), Fixed(1))

	res := Linear(Container{Orientation: Horizontal, Length: 100}, nodes(a, b, c))

	for i, n := range []*testNode{a, b, c} {
		if n.frame.Width != 33 {
			t.Errorf("child %d width = %d, want 33", i, n.frame.Width)
		}
	}
	if res.Extent != 99 {
		t.Errorf("Extent = %d, want 99", res.Extent)
	}
}

func TestLinear_OverflowIsSilent(t *testing.T) {
	a := newTestNode(Fixed(40), Fixed(5))
	b := newTestNode(Fixed(40), Fixed(5))
	fill := newTestNode(Fill(1), Fixed(5))
	fill.frame.Width = 17 // stale length from an earlier pass

	res := Linear(Container{Orientation: Horizontal, Length: 50}, nodes(a, b, fill))

	if a.frame.Width != 40 || b.frame.Width != 40 {
		t.Errorf("fixed widths = %d, %d, want 40, 40", a.frame.Width, b.frame.Width)
	}
	if fill.frame.Width != 0 {
		t.Errorf("fill width = %d, want 0", fill.frame.Width)
	}
	if res.Extent != 80 {
		t.Errorf("Extent = %d, want 80", res.Extent)
	}
	if !res.Overflow {
		t.Error("Overflow = false, want true")
	}
}

func TestLinear_Conservation(t *testing.T) {
	type tc struct {
		orientation Orientation
		length      int
		children    func() []*testNode
	}

	tests := map[string]tc{
		"horizontal fixed and wrap": {
			orientation: Horizontal,
			length:      100,
			children: func() []*testNode {
				return []*testNode{newTestNode(Fixed(30), Fixed(5)), wrapped(12, 3), newTestNode(Fill(1), Fixed(5))}
			},
		},
		"vertical fixed and wrap": {
			orientation: Vertical,
			length:      40,
			children: func() []*testNode {
				return []*testNode{newTestNode(Fixed(5), Fixed(9)), newTestNode(Fill(0.5), Fill(0.5)), wrapped(7, 4)}
			},
		},
		"overflowing container": {
			orientation: Horizontal,
			length:      10,
			children: func() []*testNode {
				return []*testNode{wrapped(25, 1), newTestNode(Fixed(30), Fixed(1))}
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			children := tt.children()
			before := make([]int, len(children))
			for i, child := range children {
				before[i] = child.frame.Length(tt.orientation)
			}

			Linear(Container{Orientation: tt.orientation, Length: tt.length}, nodes(children...))

			for i, child := range children {
				if child.SizeMode(tt.orientation).IsFill() {
					continue
				}
				if got := child.frame.Length(tt.orientation); got != before[i] {
					t.Errorf("child %d length = %d, want %d", i, got, before[i])
				}
			}
		})
	}
}

func TestLinear_CollapsedExclusion(t *testing.T) {
	a := newTestNode(Fixed(20), Fixed(5))
	gone := newTestNode(Fixed(50), Fixed(5))
	gone.visibility = Collapsed
	gone.margin = EdgeAll(7)
	gone.frame.X = 999
	fill := newTestNode(Fill(1), Fixed(5))

	res := Linear(Container{Orientation: Horizontal, Length: 100}, nodes(a, gone, fill))

	if gone.frame != NewRect(999, 0, 50, 5) {
		t.Errorf("collapsed frame = %+v, want untouched", gone.frame)
	}
	if fill.frame.X != 20 || fill.frame.Width != 80 {
		t.Errorf("fill frame = %+v, want X=20 Width=80", fill.frame)
	}
	if res.Consumed != 100 {
		t.Errorf("Consumed = %d, want 100", res.Consumed)
	}
}

func TestLinear_InvisibleTakesSpace(t *testing.T) {
	hidden := newTestNode(Fixed(30), Fixed(5))
	hidden.visibility = Invisible
	next := newTestNode(Fixed(10), Fixed(5))

	Linear(Container{Orientation: Horizontal, Length: 100}, nodes(hidden, next))

	if next.frame.X != 30 {
		t.Errorf("next.X = %d, want 30", next.frame.X)
	}
}

func TestLinear_EpsilonWeightClassification(t *testing.T) {
	type tc struct {
		weight   float64
		fullFill bool
	}

	tests := map[string]tc{
		"exactly one":     {weight: 1, fullFill: true},
		"one plus 1e-9":   {weight: 1 + 1e-9, fullFill: true},
		"one minus 1e-9":  {weight: 1 - 1e-9, fullFill: true},
		"one plus 1e-3":   {weight: 1 + 1e-3, fullFill: false},
		"half":            {weight: 0.5, fullFill: false},
		"zero is partial": {weight: 0, fullFill: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Fill(tt.weight).IsFullFill(); got != tt.fullFill {
				t.Errorf("Fill(%v).IsFullFill() = %v, want %v", tt.weight, got, tt.fullFill)
			}
		})
	}

	// Two near-one siblings split equally instead of claiming in sequence.
	a := newTestNode(Fill(1+1e-9), Fixed(1))
	b := newTestNode(Fill(1), Fixed(1))
	Linear(Container{Orientation: Horizontal, Length: 60}, nodes(a, b))
	if a.frame.Width != 30 || b.frame.Width != 30 {
		t.Errorf("widths = %d, %d, want 30, 30", a.frame.Width, b.frame.Width)
	}
}

func TestLinear_MarginsAndPadding(t *testing.T) {
	top := newTestNode(Fixed(10), Fixed(4))
	top.margin = EdgeTRBL(2, 0, 1, 0)
	middle := newTestNode(Fixed(10), Fill(1))
	middle.margin = EdgeSymmetric(3, 0)
	bottom := wrapped(10, 5)

	c := Container{Orientation: Vertical, Length: 50, Padding: EdgeTRBL(5, 0, 3, 0)}
	res := Linear(c, nodes(top, middle, bottom))

	// consumed = 2+4+1 + 3+3 + 5 = 18; middle = 50 - 18 = 32. Padding only
	// shifts positions, so the children run past the trailing padding.
	want := []Rect{
		NewRect(0, 7, 10, 4),
		NewRect(0, 15, 10, 32),
		NewRect(0, 50, 10, 5),
	}
	if diff := cmp.Diff(want, frames(top, middle, bottom)); diff != "" {
		t.Errorf("frames mismatch (-want +got):\n%s", diff)
	}
	if res.Extent != 58 {
		t.Errorf("Extent = %d, want 58", res.Extent)
	}
	if !res.Overflow {
		t.Error("Overflow = false, want true")
	}
}

func TestLinear_PaddingDoesNotShrinkFillShare(t *testing.T) {
	a := newTestNode(Fill(1), Fixed(1))
	b := newTestNode(Fill(1), Fixed(1))
	c := newTestNode(Fill(1), Fixed(1))

	res := Linear(Container{Orientation: Horizontal, Length: 300, Padding: EdgeSymmetric(0, 10)}, nodes(a, b, c))

	want := []Rect{
		NewRect(10, 0, 100, 1),
		NewRect(110, 0, 100, 1),
		NewRect(210, 0, 100, 1),
	}
	if diff := cmp.Diff(want, frames(a, b, c)); diff != "" {
		t.Errorf("frames mismatch (-want +got):\n%s", diff)
	}
	if res.Extent != 320 {
		t.Errorf("Extent = %d, want 320", res.Extent)
	}
	if res.Consumed != 300 {
		t.Errorf("Consumed = %d, want 300", res.Consumed)
	}
}

func TestLinear_NegativeMarginsClampConsumed(t *testing.T) {
	a := newTestNode(Fixed(5), Fixed(1))
	a.margin = Edges{Left: -20}
	fill := newTestNode(Fill(1), Fixed(1))

	res := Linear(Container{Orientation: Horizontal, Length: 40}, nodes(a, fill))

	// consumed = -20 + 5 = -15 clamps to 0, so the fill gets the whole 40.
	if fill.frame.Width != 40 {
		t.Errorf("fill width = %d, want 40", fill.frame.Width)
	}
	if a.frame.X != -20 {
		t.Errorf("a.X = %d, want -20", a.frame.X)
	}
	if fill.frame.X != -15 {
		t.Errorf("fill.X = %d, want -15", fill.frame.X)
	}
	if res.Extent != 25 {
		t.Errorf("Extent = %d, want 25", res.Extent)
	}
}

func TestLinear_EmptyContainer(t *testing.T) {
	type tc struct {
		children []Node
	}

	gone := newTestNode(Fixed(10), Fixed(10))
	gone.visibility = Collapsed

	tests := map[string]tc{
		"no children":   {children: nil},
		"all collapsed": {children: nodes(gone)},
		"nil child":     {children: []Node{nil}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := Container{Orientation: Horizontal, Length: 100, Padding: EdgeSymmetric(0, 4)}
			res := Linear(c, tt.children)
			if res.Extent != 8 {
				t.Errorf("Extent = %d, want 8", res.Extent)
			}
			if res.Consumed != 0 {
				t.Errorf("Consumed = %d, want 0", res.Consumed)
			}
		})
	}
}

func TestLinear_WrapExtentIdempotent(t *testing.T) {
	a := wrapped(12, 3)
	a.margin = EdgeAll(1)
	b := newTestNode(Fixed(20), Fixed(3))
	fill := newTestNode(Fill(1), Fixed(3))

	// A wrapping container is laid out with a provisional length.
	c := Container{Orientation: Horizontal, Length: 0, Padding: EdgeAll(2)}
	first := Linear(c, nodes(a, b, fill))
	second := Linear(c, nodes(a, b, fill))
	third := Linear(c, nodes(a, b, fill))

	if first.Extent != 38 {
		t.Errorf("first Extent = %d, want 38", first.Extent)
	}
	if second.Extent != first.Extent || third.Extent != first.Extent {
		t.Errorf("Extent changed across passes: %d, %d, %d", first.Extent, second.Extent, third.Extent)
	}
	if fill.frame.Width != 0 {
		t.Errorf("fill width = %d, want 0", fill.frame.Width)
	}
}

func TestLinear_ForceUpdateLayoutOnSizeChange(t *testing.T) {
	fixed := newTestNode(Fixed(10), Fixed(5))
	fill := newTestNode(Fill(1), Fixed(5))

	c := Container{Orientation: Horizontal, Length: 50}
	res := Linear(c, nodes(fixed, fill))
	if res.Relayouts != 1 {
		t.Errorf("first pass Relayouts = %d, want 1", res.Relayouts)
	}
	if fixed.relayouts != 0 {
		t.Errorf("fixed relayouts = %d, want 0", fixed.relayouts)
	}
	if fill.relayouts != 1 {
		t.Errorf("fill relayouts = %d, want 1", fill.relayouts)
	}

	res = Linear(c, nodes(fixed, fill))
	if res.Relayouts != 0 {
		t.Errorf("unchanged pass Relayouts = %d, want 0", res.Relayouts)
	}

	c.Length = 70
	Linear(c, nodes(fixed, fill))
	if fill.relayouts != 2 {
		t.Errorf("fill relayouts after resize = %d, want 2", fill.relayouts)
	}
}

func TestLinear_ReentrantRelayout(t *testing.T) {
	inner := newTestNode(Fill(1), Fill(1))
	outer := newTestNode(Fill(1), Fixed(10))
	outer.onRelayout = func(n *testNode) {
		// The child lays out its own subtree with the size it was just given.
		Linear(Container{Orientation: Vertical, Length: n.frame.Height}, nodes(inner))
		inner.frame.Width = n.frame.Width
	}
	after := newTestNode(Fixed(5), Fixed(10))

	Linear(Container{Orientation: Horizontal, Length: 45}, nodes(outer, after))

	if outer.frame.Width != 40 {
		t.Errorf("outer width = %d, want 40", outer.frame.Width)
	}
	if inner.frame != NewRect(0, 0, 40, 10) {
		t.Errorf("inner frame = %+v, want {0 0 40 10}", inner.frame)
	}
	if after.frame.X != 40 {
		t.Errorf("after.X = %d, want 40", after.frame.X)
	}
}

func TestLinear_OrientationSwitch(t *testing.T) {
	a := newTestNode(Fixed(10), Fixed(4))
	b := newTestNode(Fixed(20), Fill(1))

	Linear(Container{Orientation: Horizontal, Length: 100}, nodes(a, b))
	if b.frame.X != 10 {
		t.Errorf("horizontal b.X = %d, want 10", b.frame.X)
	}

	Linear(Container{Orientation: Vertical, Length: 30}, nodes(a, b))
	if a.frame.Y != 0 || b.frame.Y != 4 {
		t.Errorf("vertical Y = %d, %d, want 0, 4", a.frame.Y, b.frame.Y)
	}
	if b.frame.Height != 26 {
		t.Errorf("vertical b.Height = %d, want 26", b.frame.Height)
	}
	// Cross-axis positions belong to the host.
	if b.frame.X != 10 {
		t.Errorf("vertical b.X = %d, want 10 (untouched)", b.frame.X)
	}
}
