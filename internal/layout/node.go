package layout

// Node is the interface a host element implements to be laid out by Linear.
// The host owns the node; the engine only reads its properties and writes
// its frame for the duration of one pass.
type Node interface {
	// Visibility reports whether the node takes part in layout.
	Visibility() Visibility

	// Margin returns the space kept around the node.
	Margin() Edges

	// SizeMode returns how the node is sized along the given axis.
	SizeMode(axis Orientation) SizeMode

	// Frame returns the node's current frame in its parent's coordinates.
	// For Fixed and Wrap nodes the primary-axis length must already hold
	// the measured length when Linear is called.
	Frame() Rect

	// SetFrame stores a frame computed by the engine.
	SetFrame(Rect)

	// ForceUpdateLayout asks the node to recompute its own subtree
	// synchronously. Linear calls it when a pass changed the node's size.
	ForceUpdateLayout()
}
