// ABOUTME: CLI entry point for anchor
// ABOUTME: Runs the cobra command tree; errors print to stderr with exit status 1

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	// termfix must be imported before any package that imports bubbletea.
	_ "github.com/apuya/react-basics-ui-sub003/internal/termfix"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newCLI().root().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
