// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: SetSize simulates a resize; counters expose how often size was queried.

package terminal

import (
	"errors"
	"sync"
)

// ErrDetached is returned by a VirtualTerminal that has been detached,
// mimicking a host whose output is no longer a TTY.
var ErrDetached = errors.New("terminal detached")

// VirtualTerminal is a fake Terminal for unit tests.
type VirtualTerminal struct {
	mu        sync.Mutex
	width     int
	height    int
	detached  bool
	resizeFn  func(width, height int)
	sizeCalls int
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	return &VirtualTerminal{
		width:  width,
		height: height,
	}
}

// Size returns the configured terminal dimensions, or ErrDetached.
func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.sizeCalls++
	if v.detached {
		return 0, 0, ErrDetached
	}
	return v.width, v.height, nil
}

// OnResize stores the resize callback.
func (v *VirtualTerminal) OnResize(fn func(width, height int)) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.resizeFn = fn
}

// --- Test helpers (not part of Terminal interface) ---

// SetSize updates the terminal dimensions and, if a resize callback
// is registered, invokes it with the new size.
func (v *VirtualTerminal) SetSize(width, height int) {
	v.mu.Lock()
	v.width = width
	v.height = height
	fn := v.resizeFn
	v.mu.Unlock()

	if fn != nil {
		fn(width, height)
	}
}

// Detach makes subsequent Size calls fail.
func (v *VirtualTerminal) Detach() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.detached = true
}

// SizeCalls returns how many times Size was called.
func (v *VirtualTerminal) SizeCalls() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.sizeCalls
}

// HasResizeHandler reports whether a resize callback is registered.
func (v *VirtualTerminal) HasResizeHandler() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.resizeFn != nil
}
