// ABOUTME: Shared fixtures for controller tests
// ABOUTME: A counting calculator and the trigger/content/viewport of the basic bottom-start case

package anchor

import (
	"sync"

	"github.com/apuya/react-basics-ui-sub003/pkg/tui/eventbus"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/placement"
)

// countingCalc wraps placement.Compute and records every call.
type countingCalc struct {
	mu   sync.Mutex
	n    int
	last placement.Request
}

func (c *countingCalc) compute(req placement.Request) placement.Result {
	c.mu.Lock()
	c.n++
	c.last = req
	c.mu.Unlock()
	return placement.Compute(req)
}

func (c *countingCalc) calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

func (c *countingCalc) lastRequest() placement.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

func (c *countingCalc) reset() {
	c.mu.Lock()
	c.n = 0
	c.mu.Unlock()
}

type fixture struct {
	trigger *Ref
	content *Ref
	bus     *eventbus.Bus[placement.Viewport]
	calc    *countingCalc
}

// newFixture lays out a 100x30 trigger at (10,10) with a 200x100 panel in a
// 400x300 viewport: bottom fits, centered overflows left, so bottom-start.
func newFixture() *fixture {
	f := &fixture{
		trigger: NewRef(),
		content: NewRef(),
		bus:     eventbus.New[placement.Viewport](),
		calc:    &countingCalc{},
	}
	f.trigger.Set(placement.RectFrom(10, 10, 100, 30))
	f.content.Set(placement.RectFrom(0, 0, 200, 100))
	f.bus.Publish(placement.Viewport{Width: 400, Height: 300})
	return f
}

func (f *fixture) opts(extra ...Option) []Option {
	return append([]Option{
		WithPadding(8),
		WithResizeBus(f.bus),
		WithCalculator(f.calc.compute),
	}, extra...)
}

func (f *fixture) viewport() ViewportSource {
	return BusViewport{Bus: f.bus}
}
