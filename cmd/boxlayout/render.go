package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grindlemire/go-boxlayout"
	"github.com/grindlemire/go-boxlayout/internal/debug"
)

type renderOptions struct {
	width  int
	height int
}

func newRenderCmd(global *globalOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw a document with box-drawing characters",
		Long: `Lay out a JSON document and draw it on a character canvas. The viewport
defaults to the terminal size, then to the configured viewport. With no file
the document is read from standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := stdinName
			if len(args) == 1 {
				name = args[0]
			}
			w, h := viewport(cmd.OutOrStdout(), opts, global.cfg.Viewport.Width, global.cfg.Viewport.Height)
			return runRender(cmd.InOrStdin(), cmd.OutOrStdout(), name, w, h)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 0, "canvas width (default terminal width)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "canvas height (default terminal height)")
	return cmd
}

// viewport resolves the canvas size: flags first, then the terminal behind
// out, then the configured fallback.
func viewport(out io.Writer, opts *renderOptions, fallbackW, fallbackH int) (width, height int) {
	width, height = fallbackW, fallbackH
	if f, ok := out.(*os.File); ok {
		if tw, th, ok := terminalSize(f); ok {
			width, height = tw, th
		}
	}
	if opts.width > 0 {
		width = opts.width
	}
	if opts.height > 0 {
		height = opts.height
	}
	return width, height
}

func runRender(stdin io.Reader, out io.Writer, name string, width, height int) error {
	sources, err := readSources(stdin, []string{name})
	if err != nil {
		return err
	}
	root, err := sources[0].build(width, height)
	if err != nil {
		return err
	}

	canvas := boxlayout.NewCanvas(width, height)
	boxlayout.Render(canvas, root)
	debug.Logger().Debug("rendered document",
		zap.String("document", name),
		zap.Int("width", width),
		zap.Int("height", height))

	_, err = fmt.Fprintln(out, canvas.String())
	return err
}
