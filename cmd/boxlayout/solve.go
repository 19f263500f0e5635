package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-boxlayout/internal/debug"
	"github.com/grindlemire/go-boxlayout/internal/document"
)

type solveOptions struct {
	width   int
	height  int
	output  string
	workers int
}

func newSolveCmd(global *globalOptions) *cobra.Command {
	opts := &solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve [file...]",
		Short: "Lay out documents and print the frame of every view",
		Long: `Lay out each JSON document against the viewport and print the solved
frames in root coordinates. Use "-" to read a document from standard input.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := global.cfg
			if opts.width <= 0 {
				opts.width = cfg.Viewport.Width
			}
			if opts.height <= 0 {
				opts.height = cfg.Viewport.Height
			}
			if opts.output == "" {
				opts.output = cfg.Output.Format
			}
			if opts.workers <= 0 {
				opts.workers = cfg.Output.Workers
			}
			return runSolve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), opts, args)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 0, "viewport width (default from config)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "viewport height (default from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output format: table or json")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "documents solved in parallel")
	return cmd
}

// solved is the result for one input document.
type solved struct {
	name   string
	frames []document.Frame
}

func runSolve(ctx context.Context, stdin io.Reader, out io.Writer, opts *solveOptions, names []string) error {
	if opts.output != "table" && opts.output != "json" {
		return fmt.Errorf("unknown output format %q", opts.output)
	}

	sources, err := readSources(stdin, names)
	if err != nil {
		return err
	}

	start := time.Now()
	results := make([]solved, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.workers, 1))
	for i, src := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			root, err := src.build(opts.width, opts.height)
			if err != nil {
				return err
			}
			results[i] = solved{name: src.name, frames: document.Frames(root)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	debug.Logger().Info("solved documents",
		zap.Int("documents", len(results)),
		zap.Int("width", opts.width),
		zap.Int("height", opts.height),
		zap.Duration("elapsed", time.Since(start)))

	for _, res := range results {
		if opts.output == "json" {
			err = document.Encode(out, res.frames)
		} else {
			err = writeTable(out, res)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func writeTable(out io.Writer, res solved) error {
	fmt.Fprintf(out, "# %s\n", res.name)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tX\tY\tWIDTH\tHEIGHT\tVISIBILITY")
	for _, f := range res.frames {
		id := f.ID
		if id == "" {
			id = f.Path
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%s\n", id, f.X, f.Y, f.Width, f.Height, f.Visibility)
	}
	return tw.Flush()
}
