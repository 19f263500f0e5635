package boxlayout

// Option configures a View.
type Option func(*View)

// --- Identity ---

// WithID sets an identifier used by Find and by document output.
func WithID(id string) Option {
	return func(v *View) {
		v.id = id
	}
}

// --- Dimension Options ---

// WithWidth sets a fixed width.
func WithWidth(n int) Option {
	return func(v *View) {
		v.width = Fixed(n)
	}
}

// WithHeight sets a fixed height.
func WithHeight(n int) Option {
	return func(v *View) {
		v.height = Fixed(n)
	}
}

// WithSize sets both width and height.
func WithSize(width, height int) Option {
	return func(v *View) {
		v.width = Fixed(width)
		v.height = Fixed(height)
	}
}

// WithWidthWrap sizes the width to the content.
func WithWidthWrap() Option {
	return func(v *View) {
		v.width = Wrap()
	}
}

// WithHeightWrap sizes the height to the content.
func WithHeightWrap() Option {
	return func(v *View) {
		v.height = Wrap()
	}
}

// WithWidthFill makes the width claim remaining space with the given weight.
func WithWidthFill(weight float64) Option {
	return func(v *View) {
		v.width = Fill(weight)
	}
}

// WithHeightFill makes the height claim remaining space with the given weight.
func WithHeightFill(weight float64) Option {
	return func(v *View) {
		v.height = Fill(weight)
	}
}

// WithWidthMode sets the width mode directly.
func WithWidthMode(m SizeMode) Option {
	return func(v *View) {
		v.width = m
	}
}

// WithHeightMode sets the height mode directly.
func WithHeightMode(m SizeMode) Option {
	return func(v *View) {
		v.height = m
	}
}

// --- Container Options ---

// WithOrientation sets the axis along which children are laid out.
func WithOrientation(o Orientation) Option {
	return func(v *View) {
		v.orientation = o
	}
}

// WithHorizontal lays children out left-to-right.
func WithHorizontal() Option {
	return WithOrientation(Horizontal)
}

// WithVertical lays children out top-to-bottom.
func WithVertical() Option {
	return WithOrientation(Vertical)
}

// WithChildren appends children.
func WithChildren(children ...*View) Option {
	return func(v *View) {
		v.AddChild(children...)
	}
}

// --- Spacing Options ---

// WithPadding sets padding on all four sides.
func WithPadding(e Edges) Option {
	return func(v *View) {
		v.padding = e
	}
}

// WithMargin sets margin on all four sides.
func WithMargin(e Edges) Option {
	return func(v *View) {
		v.margin = e
	}
}

// --- Visual Options ---

// WithVisibility sets the visibility.
func WithVisibility(vis Visibility) Option {
	return func(v *View) {
		v.visibility = vis
	}
}

// WithLabel sets the text drawn inside the view. A leaf view that wraps its
// content is sized to the label.
func WithLabel(s string) Option {
	return func(v *View) {
		v.label = s
	}
}

// WithBorder draws a border inside the view's frame. The border takes one
// cell on each side, in addition to the padding.
func WithBorder(b BorderStyle) Option {
	return func(v *View) {
		v.border = b
	}
}
