// ABOUTME: Measurement sources for placement: trigger/content elements and the viewport
// ABOUTME: Ref is set by the renderer; TerminalViewport and BindResize adapt a terminal host

package anchor

import (
	"sync"

	"github.com/apuya/react-basics-ui-sub003/pkg/tui/eventbus"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/placement"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/terminal"
)

// Element is anything that can report its on-screen bounds.
// ok is false while the element is not mounted.
type Element interface {
	Bounds() (rect placement.Rect, ok bool)
}

// ViewportSource reports the current visible area.
// ok is false when the size cannot be determined.
type ViewportSource interface {
	Viewport() (vp placement.Viewport, ok bool)
}

// Ref holds the last rendered bounds of an element. The renderer calls Set
// after laying the element out and Clear when it stops rendering it.
// Safe for concurrent use; a nil *Ref reports unmounted.
type Ref struct {
	mu   sync.RWMutex
	rect placement.Rect
	set  bool
}

// NewRef creates an empty, unmounted Ref.
func NewRef() *Ref {
	return &Ref{}
}

// Set records the element's bounds and marks it mounted.
func (r *Ref) Set(rect placement.Rect) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rect = rect
	r.set = true
}

// Clear marks the element unmounted.
func (r *Ref) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rect = placement.Rect{}
	r.set = false
}

// Bounds returns the recorded bounds.
func (r *Ref) Bounds() (placement.Rect, bool) {
	if r == nil {
		return placement.Rect{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rect, r.set
}

// IsSet reports whether the element is mounted.
func (r *Ref) IsSet() bool {
	_, ok := r.Bounds()
	return ok
}

// StaticViewport is a fixed viewport.
type StaticViewport placement.Viewport

// Viewport implements ViewportSource.
func (v StaticViewport) Viewport() (placement.Viewport, bool) {
	vp := placement.Viewport(v)
	return vp, vp.Valid()
}

// BusViewport reads the viewport last published on a resize bus.
type BusViewport struct {
	Bus *eventbus.Bus[placement.Viewport]
}

// Viewport implements ViewportSource.
func (v BusViewport) Viewport() (placement.Viewport, bool) {
	if v.Bus == nil {
		return placement.Viewport{}, false
	}
	vp, ok := v.Bus.Last()
	return vp, ok && vp.Valid()
}

// TerminalViewport queries a terminal for its size on every call.
type TerminalViewport struct {
	Term terminal.Terminal
}

// Viewport implements ViewportSource.
func (v TerminalViewport) Viewport() (placement.Viewport, bool) {
	if v.Term == nil {
		return placement.Viewport{}, false
	}
	w, h, err := v.Term.Size()
	if err != nil {
		logger.Debug("viewport unavailable: %v", err)
		return placement.Viewport{}, false
	}
	vp := placement.Viewport{Width: w, Height: h}
	return vp, vp.Valid()
}

// BindResize publishes the terminal's current size on bus and forwards every
// later resize to it. The returned func unregisters the terminal callback.
func BindResize(term terminal.Terminal, bus *eventbus.Bus[placement.Viewport]) func() {
	if vp, ok := (TerminalViewport{Term: term}).Viewport(); ok {
		bus.Publish(vp)
	}
	term.OnResize(func(w, h int) {
		bus.Publish(placement.Viewport{Width: w, Height: h})
	})
	return func() {
		term.OnResize(nil)
	}
}

// measure builds a fresh request from the current trigger, content and
// viewport. ok is false when the trigger or viewport is unavailable.
func measure(trigger, content Element, vp ViewportSource, cfg *config) (placement.Request, bool) {
	if trigger == nil || vp == nil {
		return placement.Request{}, false
	}
	rect, ok := trigger.Bounds()
	if !ok {
		cfg.log.Debug("trigger not mounted; keeping last placement")
		return placement.Request{}, false
	}
	view, ok := vp.Viewport()
	if !ok {
		cfg.log.Debug("viewport unavailable; keeping last placement")
		return placement.Request{}, false
	}

	size := cfg.defaultSize
	if content != nil {
		if r, ok := content.Bounds(); ok && !r.IsZero() {
			size = r.Size()
		}
	}

	return placement.Request{
		Trigger:  rect,
		Content:  size,
		Viewport: view,
		Side:     cfg.side,
		Align:    cfg.align,
		Padding:  cfg.padding,
		Gap:      cfg.gap,
	}, true
}
