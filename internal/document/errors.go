package document

import (
	"errors"
	"fmt"
)

var (
	ErrSizeMode    = errors.New("invalid size mode")
	ErrOrientation = errors.New("invalid orientation")
	ErrVisibility  = errors.New("invalid visibility")
	ErrEdges       = errors.New("invalid edges")
	ErrBorder      = errors.New("invalid border")
)

// Error reports a bad field value together with the JSON path of the node
// it was found on, e.g. "$.children[1].width".
type Error struct {
	Path  string
	Field string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Path, e.Field, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
