package document

import (
	"fmt"
	"io"

	json "github.com/json-iterator/go"

	"github.com/grindlemire/go-boxlayout"
)

// Frame is the solved position of one view in root coordinates.
type Frame struct {
	ID         string `json:"id"`
	Path       string `json:"path"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Visibility string `json:"visibility"`
}

// Frames lists every view under root in depth-first order. Collapsed
// subtrees are reported with their stale frames so the output mirrors the
// document shape.
func Frames(root *boxlayout.View) []Frame {
	var out []Frame
	collect(root, "$", &out)
	return out
}

func collect(v *boxlayout.View, path string, out *[]Frame) {
	b := v.Bounds()
	*out = append(*out, Frame{
		ID:         v.ID(),
		Path:       path,
		X:          b.X,
		Y:          b.Y,
		Width:      b.Width,
		Height:     b.Height,
		Visibility: v.Visibility().String(),
	})
	for i, child := range v.Children() {
		collect(child, fmt.Sprintf("%s.children[%d]", path, i), out)
	}
}

// Encode writes frames to w as an indented JSON list.
func Encode(w io.Writer, frames []Frame) error {
	data, err := json.MarshalIndent(frames, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding frames: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing frames: %w", err)
	}
	return nil
}
