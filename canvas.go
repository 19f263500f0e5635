package boxlayout

import "strings"

// Canvas is a 2D grid of character cells that views are drawn on.
type Canvas struct {
	cells  []Cell
	width  int
	height int
}

// NewCanvas creates a canvas of the given size filled with spaces.
// Negative dimensions are treated as zero.
func NewCanvas(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)

	cells := make([]Cell, width*height)
	blank := NewCell(' ')
	for i := range cells {
		cells[i] = blank
	}
	return &Canvas{cells: cells, width: width, height: height}
}

// Width returns the canvas width in columns.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in rows.
func (c *Canvas) Height() int {
	return c.height
}

// Rect returns the canvas bounds starting at (0, 0).
func (c *Canvas) Rect() Rect {
	return NewRect(0, 0, c.width, c.height)
}

func (c *Canvas) idx(x, y int) int {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return -1
	}
	return y*c.width + x
}

// Cell returns the cell at (x, y), or the zero Cell when out of bounds.
func (c *Canvas) Cell(x, y int) Cell {
	i := c.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return c.cells[i]
}

func (c *Canvas) setCell(x, y int, cell Cell) {
	if i := c.idx(x, y); i >= 0 {
		c.cells[i] = cell
	}
}

// SetRune writes r at (x, y). A wide rune also takes the cell to its right;
// any wide character it overlaps is cleared first. A wide rune that does not
// fit before the right edge is replaced by a space.
func (c *Canvas) SetRune(x, y int, r rune) {
	if c.idx(x, y) < 0 {
		return
	}

	w := RuneWidth(r)
	c.clearWideCharAt(x, y)
	if w == 2 && x+1 < c.width {
		c.clearWideCharAt(x+1, y)
	}

	if w == 2 && x+1 >= c.width {
		c.setCell(x, y, NewCell(' '))
		return
	}

	c.setCell(x, y, Cell{Rune: r, Width: uint8(w)})
	if w == 2 {
		c.setCell(x+1, y, Cell{})
	}
}

// clearWideCharAt blanks both halves of a wide character covering (x, y).
func (c *Canvas) clearWideCharAt(x, y int) {
	cell := c.Cell(x, y)
	blank := NewCell(' ')

	switch {
	case c.idx(x, y) < 0:
	case cell.IsContinuation():
		c.setCell(x-1, y, blank)
		c.setCell(x, y, blank)
	case cell.Width == 2:
		c.setCell(x, y, blank)
		c.setCell(x+1, y, blank)
	}
}

// SetString writes s starting at (x, y) without wrapping and returns the
// display width written. Characters outside clip are skipped.
func (c *Canvas) SetString(x, y int, s string, clip Rect) int {
	clip = clip.Intersect(c.Rect())
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}

	written := 0
	cur := x
	for _, r := range s {
		w := RuneWidth(r)
		if cur >= clip.Right() {
			break
		}
		if cur >= clip.X && cur+w <= clip.Right() {
			c.SetRune(cur, y, r)
			written += w
		}
		cur += w
	}
	return written
}

// Fill fills rect with r, clipped to the canvas.
func (c *Canvas) Fill(rect Rect, r rune) {
	rect = rect.Intersect(c.Rect())
	if rect.IsEmpty() {
		return
	}

	step := RuneWidth(r)
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x += step {
			if step == 2 && x+1 >= rect.Right() {
				c.SetRune(x, y, ' ')
				continue
			}
			c.SetRune(x, y, r)
		}
	}
}

// String returns the canvas as lines of text with trailing spaces removed.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := range c.height {
		var line strings.Builder
		for x := range c.width {
			cell := c.cells[y*c.width+x]
			if cell.IsContinuation() {
				continue
			}
			line.WriteRune(cell.Rune)
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		if y < c.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
