// Command boxlayout solves and draws JSON layout documents.
//
// Usage:
//
//	boxlayout solve [file...]     Print the solved frame of every view
//	boxlayout render [file]       Draw the laid-out tree with box characters
//	boxlayout version             Print version information
//
// Examples:
//
//	boxlayout solve --width 120 --height 40 screen.json
//	boxlayout solve -o json a.json b.json
//	cat screen.json | boxlayout render -
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
