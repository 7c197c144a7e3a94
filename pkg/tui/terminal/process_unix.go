// ABOUTME: Unix-specific SIGWINCH handling for ProcessTerminal resize events.
// ABOUTME: Spawns a goroutine that listens for SIGWINCH until the returned stop func runs.

//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// startResizeListener sets up a SIGWINCH handler that forwards the new
// terminal dimensions to the resize callback.
func (t *ProcessTerminal) startResizeListener() func() {
	sigCh := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigCh, syscall.SIGWINCH)

	go func() {
		for {
			select {
			case <-done:
				return
			case <-sigCh:
				t.notify()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigCh)
			close(done)
		})
	}
}
