package main

import (
	"fmt"
	"io"
	"os"

	"github.com/grindlemire/go-boxlayout"
	"github.com/grindlemire/go-boxlayout/internal/document"
)

// stdinName is the argument that reads a document from standard input.
const stdinName = "-"

// source is one document to lay out.
type source struct {
	name string
	data []byte
}

// readSources reads every named document. Standard input is read at most
// once, so "-" may appear only once.
func readSources(stdin io.Reader, names []string) ([]source, error) {
	sources := make([]source, 0, len(names))
	sawStdin := false
	for _, name := range names {
		var data []byte
		var err error
		if name == stdinName {
			if sawStdin {
				return nil, fmt.Errorf("standard input given more than once")
			}
			sawStdin = true
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		sources = append(sources, source{name: name, data: data})
	}
	return sources, nil
}

// build decodes the document and lays it out in the viewport.
func (s source) build(width, height int) (*boxlayout.View, error) {
	root, err := document.DecodeBytes(s.data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.name, err)
	}
	root.Layout(width, height)
	return root, nil
}
