package boxlayout

import "golang.org/x/text/width"

// Cell is a single character cell on a Canvas.
// Wide characters occupy two cells; the first holds the rune and the second
// is a continuation with Width 0.
type Cell struct {
	Rune  rune
	Width uint8
}

// NewCell creates a Cell with its display width detected from the rune.
func NewCell(r rune) Cell {
	return Cell{Rune: r, Width: uint8(RuneWidth(r))}
}

// IsContinuation reports whether the cell is the trailing half of a wide
// character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// RuneWidth returns the display width of a rune in terminal cells: 2 for East
// Asian wide and fullwidth characters, 1 otherwise.
func RuneWidth(r rune) int {
	if r < 0x1100 {
		return 1
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

// StringWidth returns the display width of s in terminal cells.
func StringWidth(s string) int {
	n := 0
	for _, r := range s {
		n += RuneWidth(r)
	}
	return n
}
