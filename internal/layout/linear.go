package layout

import "math"

// maxFillLength bounds a partial-fill allocation so huge weights cannot
// overflow the float to int conversion.
const maxFillLength = math.MaxInt32

// Container describes the box whose children are laid out by Linear.
type Container struct {
	// Orientation selects the primary axis.
	Orientation Orientation

	// Length is the resolved container length on the primary axis. Fill
	// children share Length minus what margins and non-filling children
	// consume; padding only offsets positions. It may be provisional when the
	// container wraps its content.
	Length int

	// Padding insets the children. Only the primary-axis pair is used.
	Padding Edges
}

// Result reports what a Linear pass computed.
type Result struct {
	// Extent is the primary-axis length that exactly wraps the children,
	// trailing padding included. Containers that wrap their content apply it
	// to themselves.
	Extent int

	// Consumed is the space taken by margins, non-filling children and fill
	// allocations.
	Consumed int

	// Overflow is set when Extent exceeds Length. Children are not clamped.
	Overflow bool

	// Relayouts counts the children that were asked to recompute their own
	// layout because their size changed during the pass.
	Relayouts int
}

// linearItem holds per-pass state for a child that takes part in layout.
// It lives in a slice allocated per call, not on nodes.
type linearItem struct {
	node   Node
	mode   SizeMode
	margin Edges
	prior  Size
}

// Linear lays out children along the container's primary axis.
//
// Collapsed children are skipped. Fixed and Wrap children keep the
// primary-axis length already present in their frame. Fill children whose
// weight is not 1 each take weight × the space still unclaimed, in order, so
// earlier siblings are served first. Fill children with weight 1 then split
// what is left equally; the division remainder is dropped. Finally every
// child is positioned after its predecessor, margins included.
//
// A child whose size changed during the pass gets ForceUpdateLayout before
// the next child is positioned.
func Linear(c Container, children []Node) Result {
	axis := c.Orientation
	items := make([]linearItem, 0, len(children))

	// Pass 1: accumulate margins and non-filling lengths, count fills.
	consumed := 0
	fullFills := 0
	for _, child := range children {
		if child == nil || child.Visibility() == Collapsed {
			continue
		}
		frame := child.Frame()
		item := linearItem{
			node:   child,
			mode:   child.SizeMode(axis),
			margin: child.Margin(),
			prior:  frame.Size(),
		}
		consumed += item.margin.Sum(axis)
		if item.mode.IsFill() {
			if item.mode.IsFullFill() {
				fullFills++
			}
		} else {
			consumed += frame.Length(axis)
		}
		items = append(items, item)
	}
	consumed = max(consumed, 0)

	// Pass 2: partial fills claim a slice of what is still free.
	for i := range items {
		item := &items[i]
		if !item.mode.IsFill() || item.mode.IsFullFill() {
			continue
		}
		n := fillLength(remaining(c.Length, consumed), item.mode.Weight())
		consumed += n
		setLength(item.node, axis, n)
	}

	// Pass 3: full fills share the rest equally.
	if fullFills > 0 {
		share := remaining(c.Length, consumed) / fullFills
		for i := range items {
			if items[i].mode.IsFullFill() {
				setLength(items[i].node, axis, share)
			}
		}
		consumed += share * fullFills
	}

	// Pass 4: position sequentially.
	var res Result
	cursor := c.Padding.Leading(axis)
	for i := range items {
		item := &items[i]
		frame := item.node.Frame()
		cursor += item.margin.Leading(axis)
		frame.SetOrigin(axis, cursor)
		cursor = frame.End(axis) + item.margin.Trailing(axis)
		item.node.SetFrame(frame)

		if frame.Size() != item.prior {
			item.node.ForceUpdateLayout()
			res.Relayouts++
		}
	}

	res.Extent = cursor + c.Padding.Trailing(axis)
	res.Consumed = consumed
	res.Overflow = res.Extent > c.Length
	return res
}

// remaining returns the free space, never negative.
func remaining(length, consumed int) int {
	return max(length-consumed, 0)
}

// fillLength returns weight × free, truncated toward zero. Negative and NaN
// products give 0; products past maxFillLength are capped.
func fillLength(free int, weight float64) int {
	n := float64(free) * weight
	switch {
	case !(n > 0):
		return 0
	case n >= maxFillLength:
		return maxFillLength
	default:
		return int(n)
	}
}

func setLength(n Node, axis Orientation, length int) {
	frame := n.Frame()
	frame.SetLength(axis, length)
	n.SetFrame(frame)
}
