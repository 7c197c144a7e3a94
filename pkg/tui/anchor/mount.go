// ABOUTME: MountController positions a panel one frame after it is shown
// ABOUTME: Measures the mounted panel, writes coordinates, and drops stale frames by generation

package anchor

import (
	"sync"

	"github.com/apuya/react-basics-ui-sub003/pkg/tui/placement"
)

// Position is the resolved placement plus the panel origin and the size it
// was computed for.
type Position struct {
	Side  placement.Side
	Align placement.Align
	Top   int
	Left  int
	Size  placement.Size
}

// Placement returns the side/align pair.
func (p Position) Placement() placement.Placement {
	return placement.Placement{Side: p.Side, Align: p.Align}
}

// Rect returns the panel rectangle.
func (p Position) Rect() placement.Rect {
	return placement.RectFrom(p.Top, p.Left, p.Size.Width, p.Size.Height)
}

// MountController computes placement after the panel has been drawn once,
// for overlays whose size is only known after layout. Show schedules one
// measurement frame; until it runs the panel should be drawn hidden or at
// its unpositioned origin.
type MountController struct {
	mu      sync.Mutex
	trigger Element
	content Element
	vp      ViewportSource
	sched   Scheduler
	cfg     config

	visible   bool
	unmounted bool
	gen       uint64
	pending   Frame

	pos   Position
	ready bool
	unsub func()
}

// NewMountController creates a hidden controller that schedules its
// measurement frames on sched.
func NewMountController(trigger, content Element, vp ViewportSource, sched Scheduler, opts ...Option) *MountController {
	return &MountController{
		trigger: trigger,
		content: content,
		vp:      vp,
		sched:   sched,
		cfg:     newConfig(opts),
	}
}

// Show marks the panel visible and schedules a measurement frame. A frame
// still pending from an earlier Show is cancelled first.
func (c *MountController) Show() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.unmounted {
		return
	}
	c.cancelLocked()
	c.gen++
	gen := c.gen
	c.visible = true
	c.ready = false
	c.pos = Position{}

	if c.unsub == nil && c.cfg.bus != nil {
		c.unsub = c.cfg.bus.Subscribe(func(placement.Viewport) {
			c.UpdatePosition()
		})
	}
	c.pending = c.sched.Schedule(func() { c.onFrame(gen) })
}

// Hide cancels any pending frame and clears the position.
func (c *MountController) Hide() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hideLocked()
}

// Unmount hides the panel and stops the controller for good. Frames that
// fire afterwards do nothing.
func (c *MountController) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hideLocked()
	c.unmounted = true
}

// Visible reports whether Show was called without a later Hide.
func (c *MountController) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// Pending reports whether a measurement frame is scheduled.
func (c *MountController) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending != nil
}

// Position returns the last written coordinates. ready is false until the
// first measurement frame after Show has run.
func (c *MountController) Position() (pos Position, ready bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pos, c.ready
}

// UpdatePosition recomputes immediately, used when the viewport changes
// while the panel is shown. It reports whether the position changed.
// While the measurement frame is pending it does nothing; if the frame ran
// but could not measure, this is the retry.
func (c *MountController) UpdatePosition() bool {
	c.mu.Lock()
	if !c.visible || c.unmounted || (!c.ready && c.pending != nil) {
		c.mu.Unlock()
		return false
	}
	next, ok := c.computeLocked()
	if !ok || (c.ready && next == c.pos) {
		c.mu.Unlock()
		return false
	}
	c.pos = next
	c.ready = true
	notify := c.cfg.onChange
	c.mu.Unlock()

	if notify != nil {
		notify(next)
	}
	return true
}

func (c *MountController) onFrame(gen uint64) {
	c.mu.Lock()
	if c.unmounted || !c.visible || gen != c.gen {
		c.mu.Unlock()
		c.cfg.log.Debug("stale frame %d dropped", gen)
		return
	}
	c.pending = nil

	next, ok := c.computeLocked()
	if !ok {
		c.mu.Unlock()
		return
	}
	c.pos = next
	c.ready = true
	notify := c.cfg.onChange
	c.mu.Unlock()

	if notify != nil {
		notify(next)
	}
}

func (c *MountController) computeLocked() (Position, bool) {
	req, ok := measure(c.trigger, c.content, c.vp, &c.cfg)
	if !ok {
		return Position{}, false
	}
	res := c.cfg.compute(req)
	if res.Side != req.Side || res.Align != req.Align {
		c.cfg.log.Debug("placement %s flipped to %s", placement.Placement{Side: req.Side, Align: req.Align}, res.Placement())
	}
	return Position{
		Side:  res.Side,
		Align: res.Align,
		Top:   res.Top,
		Left:  res.Left,
		Size:  req.Content,
	}, true
}

func (c *MountController) cancelLocked() {
	if c.pending != nil {
		c.pending.Cancel()
		c.pending = nil
	}
}

func (c *MountController) hideLocked() {
	c.cancelLocked()
	c.visible = false
	c.ready = false
	c.pos = Position{}
	if c.unsub != nil {
		c.unsub()
		c.unsub = nil
	}
}
