// ABOUTME: Tests for the check command and its parallel runner
// ABOUTME: Same seed gives the same sample split regardless of worker scheduling

package main

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRunCheck_NoViolations(t *testing.T) {
	t.Parallel()

	rep, err := runCheck(context.Background(), 2001, 4, 7)
	if err != nil {
		t.Fatalf("runCheck: %v", err)
	}
	if rep.Samples != 2001 {
		t.Errorf("Samples = %d, want 2001", rep.Samples)
	}
	if rep.Total != 0 || len(rep.Violations) != 0 {
		t.Errorf("found %d violations: %v", rep.Total, rep.Violations)
	}
}

func TestRunCheck_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runCheck(ctx, 100, 2, 1)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestCheckCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, testCLI(80, 24), "check", "--samples", "500", "--workers", "3", "--seed", "42")
	if err != nil {
		t.Fatalf("check: %v\n%s", err, out)
	}
	if want := "checked 500 requests with 3 workers: 0 violations\n"; out != want {
		t.Errorf("check printed %q, want %q", out, want)
	}
}

func TestCheckCommand_BadFlags(t *testing.T) {
	t.Parallel()

	_, err := execute(t, testCLI(80, 24), "check", "--workers", "0")
	if err == nil || !strings.Contains(err.Error(), "must be positive") {
		t.Errorf("err = %v, want a positive-count error", err)
	}
}
