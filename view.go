package boxlayout

// View is a box in a retained layout tree.
// It implements layout.Node and lays out its own children with Linear.
type View struct {
	// Tree structure
	id       string
	children []*View
	parent   *View

	// Layout properties
	orientation Orientation
	visibility  Visibility
	margin      Edges
	padding     Edges
	width       SizeMode
	height      SizeMode

	// Computed
	frame Rect
	dirty bool

	// Content
	label  string
	border BorderStyle
}

// Compile-time check that View implements Node
var _ Node = (*View)(nil)

// New creates a new View with the given options.
// By default a View is vertical, visible and wraps its content on both axes.
func New(opts ...Option) *View {
	v := &View{
		orientation: Vertical,
		width:       Wrap(),
		height:      Wrap(),
		dirty:       true,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}
