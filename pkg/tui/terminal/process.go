// ABOUTME: ProcessTerminal implements Terminal using os.Stdout and golang.org/x/term.
// ABOUTME: Delegates platform-specific resize handling; Stop releases the listener.

package terminal

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ProcessTerminal is a real terminal backed by os.Stdout and x/term.
type ProcessTerminal struct {
	mu       sync.Mutex
	fd       int
	resizeFn func(width, height int)
	stop     func()
}

// NewProcessTerminal returns a ProcessTerminal measuring os.Stdout.
func NewProcessTerminal() *ProcessTerminal {
	return &ProcessTerminal{fd: int(os.Stdout.Fd())}
}

// IsTerminal reports whether stdout is attached to a terminal.
func (t *ProcessTerminal) IsTerminal() bool {
	return term.IsTerminal(t.fd)
}

// Size returns the current terminal dimensions.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(t.fd)
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// OnResize registers a callback invoked when the terminal is resized.
// The platform listener starts on the first non-nil callback.
func (t *ProcessTerminal) OnResize(fn func(width, height int)) {
	t.mu.Lock()
	t.resizeFn = fn
	start := fn != nil && t.stop == nil
	t.mu.Unlock()

	if start {
		stop := t.startResizeListener()
		t.mu.Lock()
		t.stop = stop
		t.mu.Unlock()
	}
}

// Stop removes the resize listener. Safe to call multiple times.
func (t *ProcessTerminal) Stop() {
	t.mu.Lock()
	stop := t.stop
	t.stop = nil
	t.resizeFn = nil
	t.mu.Unlock()

	if stop != nil {
		stop()
	}
}

// notify forwards the current size to the registered callback.
func (t *ProcessTerminal) notify() {
	t.mu.Lock()
	fn := t.resizeFn
	t.mu.Unlock()

	if fn == nil {
		return
	}
	w, h, err := t.Size()
	if err != nil {
		return
	}
	fn(w, h)
}
