package document

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	json "github.com/json-iterator/go"

	"github.com/grindlemire/go-boxlayout"
)

// node is the wire form of a view.
type node struct {
	ID          string          `json:"id,omitempty"`
	Orientation string          `json:"orientation,omitempty"`
	Width       json.RawMessage `json:"width,omitempty"`
	Height      json.RawMessage `json:"height,omitempty"`
	Padding     json.RawMessage `json:"padding,omitempty"`
	Margin      json.RawMessage `json:"margin,omitempty"`
	Visibility  string          `json:"visibility,omitempty"`
	Label       string          `json:"label,omitempty"`
	Border      json.RawMessage `json:"border,omitempty"`
	Children    []node          `json:"children,omitempty"`
}

// Decode reads one document from r and builds its view tree.
func Decode(r io.Reader) (*boxlayout.View, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return DecodeBytes(data)
}

// DecodeBytes builds the view tree described by data.
func DecodeBytes(data []byte) (*boxlayout.View, error) {
	var root node
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return root.build("$")
}

func (n *node) build(path string) (*boxlayout.View, error) {
	fieldErr := func(field string, err error) error {
		return &Error{Path: path, Field: field, Err: err}
	}

	orientation, err := ParseOrientation(n.Orientation)
	if err != nil {
		return nil, fieldErr("orientation", err)
	}
	width, err := ParseSizeMode(n.Width)
	if err != nil {
		return nil, fieldErr("width", err)
	}
	height, err := ParseSizeMode(n.Height)
	if err != nil {
		return nil, fieldErr("height", err)
	}
	padding, err := ParseEdges(n.Padding)
	if err != nil {
		return nil, fieldErr("padding", err)
	}
	margin, err := ParseEdges(n.Margin)
	if err != nil {
		return nil, fieldErr("margin", err)
	}
	visibility, err := ParseVisibility(n.Visibility)
	if err != nil {
		return nil, fieldErr("visibility", err)
	}
	border, err := parseBorder(n.Border)
	if err != nil {
		return nil, fieldErr("border", err)
	}

	v := boxlayout.New(
		boxlayout.WithID(n.ID),
		boxlayout.WithOrientation(orientation),
		boxlayout.WithWidthMode(width),
		boxlayout.WithHeightMode(height),
		boxlayout.WithPadding(padding),
		boxlayout.WithMargin(margin),
		boxlayout.WithVisibility(visibility),
		boxlayout.WithLabel(n.Label),
		boxlayout.WithBorder(border),
	)
	for i := range n.Children {
		child, err := n.Children[i].build(fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		v.AddChild(child)
	}
	return v, nil
}

// ParseSizeMode decodes a size value. A missing or null value wraps.
func ParseSizeMode(raw json.RawMessage) (boxlayout.SizeMode, error) {
	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return boxlayout.Wrap(), nil
	}

	var s string
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return boxlayout.SizeMode{}, fmt.Errorf("%w: %v", ErrSizeMode, err)
		}
	} else {
		s = string(raw)
	}
	s = strings.TrimSpace(strings.ToLower(s))

	switch {
	case s == "wrap":
		return boxlayout.Wrap(), nil
	case s == "fill":
		return boxlayout.Fill(1), nil
	case strings.HasPrefix(s, "fill:"):
		w, err := strconv.ParseFloat(strings.TrimPrefix(s, "fill:"), 64)
		if err != nil || w < 0 || math.IsInf(w, 0) || math.IsNaN(w) {
			return boxlayout.SizeMode{}, fmt.Errorf("%w: bad weight in %q", ErrSizeMode, s)
		}
		return boxlayout.Fill(w), nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return boxlayout.SizeMode{}, fmt.Errorf("%w: %q", ErrSizeMode, s)
	}
	return boxlayout.Fixed(n), nil
}

// ParseEdges decodes a number, [v, h] or [t, r, b, l]. A missing value is
// zero on every side.
func ParseEdges(raw json.RawMessage) (boxlayout.Edges, error) {
	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return boxlayout.Edges{}, nil
	}

	if raw[0] != '[' {
		var n int
		if err := json.Unmarshal(raw, &n); err != nil {
			return boxlayout.Edges{}, fmt.Errorf("%w: %s", ErrEdges, raw)
		}
		return boxlayout.EdgeAll(n), nil
	}

	var vals []int
	if err := json.Unmarshal(raw, &vals); err != nil {
		return boxlayout.Edges{}, fmt.Errorf("%w: %s", ErrEdges, raw)
	}
	switch len(vals) {
	case 1:
		return boxlayout.EdgeAll(vals[0]), nil
	case 2:
		return boxlayout.EdgeSymmetric(vals[0], vals[1]), nil
	case 4:
		return boxlayout.EdgeTRBL(vals[0], vals[1], vals[2], vals[3]), nil
	default:
		return boxlayout.Edges{}, fmt.Errorf("%w: want 1, 2 or 4 values, got %d", ErrEdges, len(vals))
	}
}

// ParseOrientation decodes "horizontal" or "vertical". Empty is vertical.
func ParseOrientation(s string) (boxlayout.Orientation, error) {
	switch strings.ToLower(s) {
	case "", "vertical":
		return boxlayout.Vertical, nil
	case "horizontal":
		return boxlayout.Horizontal, nil
	default:
		return boxlayout.Vertical, fmt.Errorf("%w: %q", ErrOrientation, s)
	}
}

// ParseVisibility decodes "visible", "invisible" or "collapsed". Empty is
// visible.
func ParseVisibility(s string) (boxlayout.Visibility, error) {
	switch strings.ToLower(s) {
	case "", "visible":
		return boxlayout.Visible, nil
	case "invisible":
		return boxlayout.Invisible, nil
	case "collapsed", "gone":
		return boxlayout.Collapsed, nil
	default:
		return boxlayout.Visible, fmt.Errorf("%w: %q", ErrVisibility, s)
	}
}

func parseBorder(raw json.RawMessage) (boxlayout.BorderStyle, error) {
	if isNull(raw) {
		return boxlayout.BorderNone, nil
	}

	var on bool
	if err := json.Unmarshal(raw, &on); err == nil {
		if on {
			return boxlayout.BorderSingle, nil
		}
		return boxlayout.BorderNone, nil
	}

	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return boxlayout.BorderNone, fmt.Errorf("%w: %s", ErrBorder, raw)
	}
	b, err := boxlayout.ParseBorderStyle(strings.ToLower(name))
	if err != nil {
		return boxlayout.BorderNone, fmt.Errorf("%w: %v", ErrBorder, err)
	}
	return b, nil
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
