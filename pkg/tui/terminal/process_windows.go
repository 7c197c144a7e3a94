// ABOUTME: Windows stub for ProcessTerminal resize handling.
// ABOUTME: Windows has no SIGWINCH; hosts there rely on Bubble Tea window size messages.

//go:build windows

package terminal

// startResizeListener is a no-op on Windows. Console resize events arrive
// through ReadConsoleInput, which the Bubble Tea host already consumes.
func (t *ProcessTerminal) startResizeListener() func() {
	return func() {}
}
