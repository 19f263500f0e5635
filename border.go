package boxlayout

import "fmt"

// BorderStyle selects the box-drawing characters around a view.
// A border takes one cell on every side of the view.
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderSingle
	BorderDouble
	BorderRounded
	BorderThick
)

var borderNames = [...]string{
	BorderNone:    "none",
	BorderSingle:  "single",
	BorderDouble:  "double",
	BorderRounded: "rounded",
	BorderThick:   "thick",
}

// String returns the name used for the style in documents.
func (b BorderStyle) String() string {
	if b < 0 || int(b) >= len(borderNames) {
		return fmt.Sprintf("BorderStyle(%d)", int(b))
	}
	return borderNames[b]
}

// ParseBorderStyle maps a name back to its style. The empty string is
// BorderNone.
func ParseBorderStyle(s string) (BorderStyle, error) {
	if s == "" {
		return BorderNone, nil
	}
	for i, name := range borderNames {
		if name == s {
			return BorderStyle(i), nil
		}
	}
	return BorderNone, fmt.Errorf("unknown border style %q", s)
}

// BorderChars holds the characters used to draw a box.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// boxChars builds BorderChars from corners (clockwise from the top left)
// plus the horizontal and vertical edge runes.
func boxChars(tl, tr, br, bl, h, v rune) BorderChars {
	return BorderChars{
		TopLeft: tl, Top: h, TopRight: tr,
		Left: v, Right: v,
		BottomLeft: bl, Bottom: h, BottomRight: br,
	}
}

// Chars returns the box-drawing characters for the style. BorderNone and
// unknown styles draw spaces.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderSingle:
		return boxChars('┌', '┐', '┘', '└', '─', '│')
	case BorderDouble:
		return boxChars('╔', '╗', '╝', '╚', '═', '║')
	case BorderRounded:
		return boxChars('╭', '╮', '╯', '╰', '─', '│')
	case BorderThick:
		return boxChars('┏', '┓', '┛', '┗', '━', '┃')
	default:
		return boxChars(' ', ' ', ' ', ' ', ' ', ' ')
	}
}

// DrawBox draws a border around rect on the canvas. Nothing is drawn for
// BorderNone or when the clipped rect is smaller than 2x2.
func DrawBox(c *Canvas, rect Rect, border BorderStyle) {
	if border == BorderNone {
		return
	}
	rect = rect.Intersect(c.Rect())
	if rect.Width < 2 || rect.Height < 2 {
		return
	}

	chars := border.Chars()
	left, right := rect.X, rect.Right()-1
	top, bottom := rect.Y, rect.Bottom()-1

	c.SetRune(left, top, chars.TopLeft)
	c.SetRune(right, top, chars.TopRight)
	c.SetRune(left, bottom, chars.BottomLeft)
	c.SetRune(right, bottom, chars.BottomRight)
	for x := left + 1; x < right; x++ {
		c.SetRune(x, top, chars.Top)
		c.SetRune(x, bottom, chars.Bottom)
	}
	for y := top + 1; y < bottom; y++ {
		c.SetRune(left, y, chars.Left)
		c.SetRune(right, y, chars.Right)
	}
}
