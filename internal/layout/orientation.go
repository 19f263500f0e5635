package layout

// Orientation selects the primary axis of a container.
// It doubles as the axis selector for per-axis properties.
type Orientation uint8

const (
	Horizontal Orientation = iota // Children laid out left-to-right
	Vertical                      // Children laid out top-to-bottom
)

// Cross returns the axis orthogonal to o.
func (o Orientation) Cross() Orientation {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Visibility controls whether a node is drawn and whether it takes space.
type Visibility uint8

const (
	Visible   Visibility = iota // Drawn and laid out
	Invisible                   // Laid out but not drawn
	Collapsed                   // Neither drawn nor laid out
)

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Invisible:
		return "invisible"
	case Collapsed:
		return "collapsed"
	default:
		return "unknown"
	}
}
