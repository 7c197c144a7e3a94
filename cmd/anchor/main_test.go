// ABOUTME: Tests for the anchor command tree, run in-process with captured output
// ABOUTME: Terminal size comes from a VirtualTerminal instead of the real tty

package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/apuya/react-basics-ui-sub003/internal/log"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/terminal"
)

func testCLI(w, h int) *cli {
	return &cli{
		term:   terminal.NewVirtualTerminal(w, h),
		logger: log.Named("test"),
	}
}

func execute(t *testing.T, c *cli, args ...string) (string, error) {
	t.Helper()
	root := c.root()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRoot_Version(t *testing.T) {
	t.Parallel()

	out, err := execute(t, testCLI(80, 24), "--version")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	if want := "anchor dev (unknown) built unknown\n"; out != want {
		t.Errorf("--version printed %q, want %q", out, want)
	}
}

func TestRoot_UnknownCommand(t *testing.T) {
	t.Parallel()

	if _, err := execute(t, testCLI(80, 24), "frobnicate"); err == nil {
		t.Error("unknown command should fail")
	}
}
