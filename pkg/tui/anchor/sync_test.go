// ABOUTME: Tests for SyncController: caching, resize handling, and listener lifecycle
// ABOUTME: Includes the resize-while-closed and open/close leak scenarios

package anchor

import (
	"testing"

	"github.com/apuya/react-basics-ui-sub003/pkg/tui/placement"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/terminal"
)

var bottomStart = placement.Placement{Side: placement.SideBottom, Align: placement.AlignStart}

func TestSyncController_ClosedReturnsPreferred(t *testing.T) {
	t.Parallel()

	f := newFixture()
	c := NewSyncController(f.trigger, f.content, f.viewport(),
		f.opts(WithSide(placement.SideRight), WithAlign(placement.AlignEnd))...)

	want := placement.Placement{Side: placement.SideRight, Align: placement.AlignEnd}
	if got := c.Placement(); got != want {
		t.Errorf("Placement() = %v, want %v", got, want)
	}
	if f.calc.calls() != 0 {
		t.Errorf("calculator called %d times while closed", f.calc.calls())
	}
}

func TestSyncController_OpenComputesAndCaches(t *testing.T) {
	t.Parallel()

	f := newFixture()
	c := NewSyncController(f.trigger, f.content, f.viewport(), f.opts()...)
	c.SetOpen(true)

	if got := c.Placement(); got != bottomStart {
		t.Fatalf("Placement() = %v, want %v", got, bottomStart)
	}
	if got := c.Placement(); got != bottomStart {
		t.Fatalf("second Placement() = %v, want %v", got, bottomStart)
	}
	if f.calc.calls() != 1 {
		t.Errorf("calculator called %d times for unchanged geometry, want 1", f.calc.calls())
	}

	f.trigger.Set(placement.RectFrom(10, 12, 100, 30))
	c.Placement()
	if f.calc.calls() != 2 {
		t.Errorf("calculator called %d times after trigger moved, want 2", f.calc.calls())
	}
}

func TestSyncController_UsesMeasuredContent(t *testing.T) {
	t.Parallel()

	f := newFixture()
	c := NewSyncController(f.trigger, f.content, f.viewport(), f.opts()...)
	c.SetOpen(true)
	c.Placement()

	if got := f.calc.lastRequest().Content; got != (placement.Size{Width: 200, Height: 100}) {
		t.Errorf("Content = %+v, want measured 200x100", got)
	}

	f.content.Clear()
	c.Placement()
	if got := f.calc.lastRequest().Content; got != placement.DefaultContentSize {
		t.Errorf("Content = %+v, want default %+v", got, placement.DefaultContentSize)
	}
}

func TestSyncController_ResizeWhileClosed(t *testing.T) {
	t.Parallel()

	f := newFixture()
	c := NewSyncController(f.trigger, f.content, f.viewport(), f.opts()...)

	c.SetOpen(true)
	c.Placement()
	c.SetOpen(false)
	f.calc.reset()

	for i := range 5 {
		f.bus.Publish(placement.Viewport{Width: 300 + i, Height: 200})
	}

	if f.calc.calls() != 0 {
		t.Errorf("calculator called %d times while closed, want 0", f.calc.calls())
	}
	if f.bus.Count() != 0 {
		t.Errorf("bus has %d listeners while closed, want 0", f.bus.Count())
	}
}

func TestSyncController_ResizeWhileOpenFlips(t *testing.T) {
	t.Parallel()

	f := newFixture()
	c := NewSyncController(f.trigger, f.content, f.viewport(), f.opts()...)
	c.SetOpen(true)
	if got := c.Placement(); got != bottomStart {
		t.Fatalf("Placement() = %v, want %v", got, bottomStart)
	}

	f.bus.Publish(placement.Viewport{Width: 400, Height: 120})

	want := placement.Placement{Side: placement.SideTop, Align: placement.AlignStart}
	if got := c.Placement(); got != want {
		t.Errorf("Placement() after resize = %v, want %v", got, want)
	}
}

func TestSyncController_TerminalResizeDrivesUpdate(t *testing.T) {
	t.Parallel()

	f := newFixture()
	term := terminal.NewVirtualTerminal(400, 300)
	unbind := BindResize(term, f.bus)
	defer unbind()

	c := NewSyncController(f.trigger, f.content, TerminalViewport{Term: term}, f.opts()...)
	c.SetOpen(true)
	c.Placement()
	f.calc.reset()

	term.SetSize(400, 120)

	if f.calc.calls() != 1 {
		t.Errorf("calculator called %d times after resize, want 1", f.calc.calls())
	}
	if got := c.Placement(); got.Side != placement.SideTop {
		t.Errorf("Side = %v, want top", got.Side)
	}
}

func TestSyncController_UpdatePositionIdempotent(t *testing.T) {
	t.Parallel()

	f := newFixture()
	c := NewSyncController(f.trigger, f.content, f.viewport(), f.opts()...)

	if c.UpdatePosition() {
		t.Error("UpdatePosition() while closed reported a change")
	}

	c.SetOpen(true)
	if !c.UpdatePosition() {
		t.Error("first UpdatePosition() should populate the cache")
	}
	if c.UpdatePosition() {
		t.Error("UpdatePosition() with unchanged geometry reported a change")
	}
	if got := c.Placement(); got != bottomStart {
		t.Errorf("Placement() = %v, want %v", got, bottomStart)
	}
}

func TestSyncController_TriggerUnavailable(t *testing.T) {
	t.Parallel()

	f := newFixture()
	c := NewSyncController(f.trigger, f.content, f.viewport(), f.opts()...)
	c.SetOpen(true)
	c.Placement()

	f.trigger.Clear()
	if got := c.Placement(); got != bottomStart {
		t.Errorf("Placement() with unmounted trigger = %v, want cached %v", got, bottomStart)
	}
	if c.UpdatePosition() {
		t.Error("UpdatePosition() with unmounted trigger reported a change")
	}

	fresh := NewSyncController(NewRef(), nil, f.viewport(), f.opts()...)
	fresh.SetOpen(true)
	want := placement.Placement{Side: placement.SideBottom, Align: placement.AlignCenter}
	if got := fresh.Placement(); got != want {
		t.Errorf("Placement() with no measurement yet = %v, want preferred %v", got, want)
	}
}

func TestSyncController_DisableResetsCache(t *testing.T) {
	t.Parallel()

	f := newFixture()
	c := NewSyncController(f.trigger, f.content, f.viewport(), f.opts()...)
	c.SetOpen(true)
	c.Placement()

	c.SetEnabled(false)
	if f.bus.Count() != 0 {
		t.Errorf("bus has %d listeners while disabled", f.bus.Count())
	}
	f.trigger.Clear()
	want := placement.Placement{Side: placement.SideBottom, Align: placement.AlignCenter}
	if got := c.Placement(); got != want {
		t.Errorf("Placement() while disabled = %v, want %v", got, want)
	}

	c.SetEnabled(true)
	if got := c.Placement(); got != want {
		t.Errorf("Placement() after re-enable without trigger = %v, want %v (cache discarded)", got, want)
	}
	if f.bus.Count() != 1 {
		t.Errorf("bus has %d listeners after re-enable, want 1", f.bus.Count())
	}
}

func TestSyncController_StartsDisabled(t *testing.T) {
	t.Parallel()

	f := newFixture()
	c := NewSyncController(f.trigger, f.content, f.viewport(), f.opts(WithEnabled(false))...)
	c.SetOpen(true)
	c.Placement()

	if f.calc.calls() != 0 || f.bus.Count() != 0 {
		t.Errorf("calls = %d, listeners = %d; want 0, 0", f.calc.calls(), f.bus.Count())
	}
}

func TestSyncController_NoListenerLeak(t *testing.T) {
	t.Parallel()

	f := newFixture()
	c := NewSyncController(f.trigger, f.content, f.viewport(), f.opts()...)

	for range 100 {
		c.SetOpen(true)
		c.SetOpen(true)
		if f.bus.Count() != 1 {
			t.Fatalf("bus has %d listeners while open, want 1", f.bus.Count())
		}
		c.SetOpen(false)
	}
	if f.bus.Count() != 0 {
		t.Errorf("bus has %d listeners after 100 cycles, want 0", f.bus.Count())
	}
}

func TestSyncController_Close(t *testing.T) {
	t.Parallel()

	f := newFixture()
	c := NewSyncController(f.trigger, f.content, f.viewport(), f.opts()...)
	c.SetOpen(true)

	c.Close()
	c.Close()
	if f.bus.Count() != 0 {
		t.Errorf("bus has %d listeners after Close", f.bus.Count())
	}

	f.calc.reset()
	c.SetOpen(true)
	c.Placement()
	if f.calc.calls() != 0 || f.bus.Count() != 0 {
		t.Errorf("closed controller still active: calls = %d, listeners = %d", f.calc.calls(), f.bus.Count())
	}
}
