// ABOUTME: Functional options shared by SyncController and MountController
// ABOUTME: Preferred side/align, spacing, fallback size, resize bus and calculator override

package anchor

import (
	"github.com/apuya/react-basics-ui-sub003/internal/log"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/eventbus"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/placement"
)

var logger = log.Named("anchor")

// DefaultPadding is the minimum distance kept from the viewport edges.
const DefaultPadding = 1

type config struct {
	side        placement.Side
	align       placement.Align
	padding     int
	gap         int
	defaultSize placement.Size
	enabled     bool
	bus         *eventbus.Bus[placement.Viewport]
	compute     func(placement.Request) placement.Result
	onChange    func(Position)
	log         log.Logger
}

func defaultConfig() config {
	return config{
		side:        placement.SideBottom,
		align:       placement.AlignCenter,
		padding:     DefaultPadding,
		defaultSize: placement.DefaultContentSize,
		enabled:     true,
		compute:     placement.Compute,
		log:         logger,
	}
}

func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.compute == nil {
		cfg.compute = placement.Compute
	}
	if !cfg.defaultSize.Valid() {
		cfg.defaultSize = placement.DefaultContentSize
	}
	return cfg
}

// Option configures a controller.
type Option func(*config)

// WithSide sets the preferred side. Default bottom.
func WithSide(s placement.Side) Option {
	return func(c *config) { c.side = s }
}

// WithAlign sets the preferred alignment. Default center.
func WithAlign(a placement.Align) Option {
	return func(c *config) { c.align = a }
}

// WithPadding sets the viewport edge padding in cells.
func WithPadding(n int) Option {
	return func(c *config) { c.padding = n }
}

// WithGap sets the distance between trigger and panel in cells.
func WithGap(n int) Option {
	return func(c *config) { c.gap = n }
}

// WithDefaultSize sets the content size assumed while the panel is unmeasured.
func WithDefaultSize(s placement.Size) Option {
	return func(c *config) { c.defaultSize = s }
}

// WithEnabled sets the initial enabled state. Default true.
func WithEnabled(enabled bool) Option {
	return func(c *config) { c.enabled = enabled }
}

// WithResizeBus subscribes the controller to viewport resizes while open.
func WithResizeBus(bus *eventbus.Bus[placement.Viewport]) Option {
	return func(c *config) { c.bus = bus }
}

// WithCalculator replaces the placement calculator.
func WithCalculator(fn func(placement.Request) placement.Result) Option {
	return func(c *config) { c.compute = fn }
}

// WithOnChange registers a callback invoked after a MountController writes
// new coordinates. It runs without the controller lock held.
func WithOnChange(fn func(Position)) Option {
	return func(c *config) { c.onChange = fn }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l log.Logger) Option {
	return func(c *config) { c.log = l }
}
