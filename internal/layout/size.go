package layout

import (
	"math"
	"strconv"
)

// fillEpsilon is the tolerance used to decide whether a fill weight is 1.
const fillEpsilon = 1e-6

// Mode specifies how a SizeMode is interpreted.
type Mode uint8

const (
	ModeFixed Mode = iota // Absolute length
	ModeWrap              // Length of the wrapped content
	ModeFill              // Share of the remaining space
)

// SizeMode governs a node's length along one axis.
// The zero value is Fixed(0).
type SizeMode struct {
	mode   Mode
	length int
	weight float64
}

// Fixed returns a SizeMode with an absolute length.
func Fixed(n int) SizeMode {
	return SizeMode{mode: ModeFixed, length: n}
}

// Wrap returns a SizeMode that sizes a node to its content.
func Wrap() SizeMode {
	return SizeMode{mode: ModeWrap}
}

// Fill returns a SizeMode that claims remaining space.
// A weight of 1 shares the space equally with the other full-fill siblings;
// any other weight claims weight × remaining for itself.
func Fill(weight float64) SizeMode {
	return SizeMode{mode: ModeFill, weight: weight}
}

// Kind returns the sizing mode.
func (s SizeMode) Kind() Mode {
	return s.mode
}

// Length returns the fixed length. It is 0 unless Kind is ModeFixed.
func (s SizeMode) Length() int {
	return s.length
}

// Weight returns the fill weight. It is 0 unless Kind is ModeFill.
func (s SizeMode) Weight() float64 {
	return s.weight
}

// IsFill returns true if the node fills remaining space.
func (s SizeMode) IsFill() bool {
	return s.mode == ModeFill
}

// IsFullFill returns true for fill nodes whose weight is 1 within epsilon.
func (s SizeMode) IsFullFill() bool {
	return s.mode == ModeFill && math.Abs(s.weight-1) <= fillEpsilon
}

func (s SizeMode) String() string {
	switch s.mode {
	case ModeFixed:
		return strconv.Itoa(s.length)
	case ModeWrap:
		return "wrap"
	case ModeFill:
		if s.IsFullFill() {
			return "fill"
		}
		return "fill:" + strconv.FormatFloat(s.weight, 'g', -1, 64)
	default:
		return "unknown"
	}
}
