// ABOUTME: Defines the Terminal interface overlays treat as their viewport host.
// ABOUTME: Size queries plus resize notifications; implementations target real or virtual terminals.

package terminal

// Terminal reports the visible area and notifies on resize. Overlay
// placement reads the size as its viewport and recomputes on each callback.
type Terminal interface {
	Size() (width, height int, err error)
	// OnResize registers fn as the resize callback, replacing any previous
	// one. Passing nil stops notifications.
	OnResize(fn func(width, height int))
}
