// ABOUTME: SyncController resolves side and align during render from live measurements
// ABOUTME: Caches the last placement and follows viewport resizes only while open and enabled

package anchor

import (
	"sync"

	"github.com/apuya/react-basics-ui-sub003/pkg/tui/placement"
)

// SyncController computes placement synchronously while the host renders.
// It is used by overlays whose panel size is known before it is drawn, so
// side and align can be decided in the same frame.
type SyncController struct {
	mu      sync.Mutex
	trigger Element
	content Element
	vp      ViewportSource
	cfg     config

	open    bool
	enabled bool
	closed  bool

	cached   placement.Placement
	hasCache bool
	lastReq  placement.Request
	unsub    func()
}

// NewSyncController creates a closed controller. content may be nil when the
// panel is never measured; the default size is used instead.
func NewSyncController(trigger, content Element, vp ViewportSource, opts ...Option) *SyncController {
	cfg := newConfig(opts)
	return &SyncController{
		trigger: trigger,
		content: content,
		vp:      vp,
		cfg:     cfg,
		enabled: cfg.enabled,
	}
}

// SetOpen records whether the overlay is open.
func (c *SyncController) SetOpen(open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = open
	c.syncLocked()
}

// SetEnabled turns placement on or off without changing the open state.
func (c *SyncController) SetEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = enabled
	c.syncLocked()
}

// Open reports the last value passed to SetOpen.
func (c *SyncController) Open() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// Placement returns the side and align to render with. While closed or
// disabled it is the preferred placement. When the trigger cannot be
// measured it is the last computed placement, or the preferred one if none.
func (c *SyncController) Placement() placement.Placement {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.activeLocked() {
		return c.preferred()
	}

	req, ok := measure(c.trigger, c.content, c.vp, &c.cfg)
	if !ok {
		return c.currentLocked()
	}
	if c.hasCache && req == c.lastReq {
		return c.cached
	}
	c.storeLocked(req, c.cfg.compute(req).Placement())
	return c.cached
}

// UpdatePosition recomputes from fresh measurements and replaces the cached
// placement only when side or align changed. It reports whether it did.
func (c *SyncController) UpdatePosition() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.activeLocked() {
		return false
	}
	req, ok := measure(c.trigger, c.content, c.vp, &c.cfg)
	if !ok {
		return false
	}
	next := c.cfg.compute(req).Placement()
	if c.hasCache && next == c.cached {
		c.lastReq = req
		return false
	}
	c.storeLocked(req, next)
	return true
}

// Close detaches the controller for good. Idempotent.
func (c *SyncController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.syncLocked()
}

func (c *SyncController) preferred() placement.Placement {
	return placement.Placement{Side: c.cfg.side, Align: c.cfg.align}
}

func (c *SyncController) currentLocked() placement.Placement {
	if c.hasCache {
		return c.cached
	}
	return c.preferred()
}

func (c *SyncController) storeLocked(req placement.Request, p placement.Placement) {
	if c.hasCache && p != c.cached {
		c.cfg.log.Debug("placement %s -> %s", c.cached, p)
	}
	c.cached = p
	c.hasCache = true
	c.lastReq = req
}

func (c *SyncController) activeLocked() bool {
	return c.open && c.enabled && !c.closed
}

// syncLocked brings the cache and resize subscription in line with the
// open/enabled state.
func (c *SyncController) syncLocked() {
	if c.activeLocked() {
		if c.unsub == nil && c.cfg.bus != nil {
			c.unsub = c.cfg.bus.Subscribe(func(placement.Viewport) {
				c.UpdatePosition()
			})
		}
		return
	}

	c.hasCache = false
	c.cached = placement.Placement{}
	c.lastReq = placement.Request{}
	if c.unsub != nil {
		c.unsub()
		c.unsub = nil
	}
}
