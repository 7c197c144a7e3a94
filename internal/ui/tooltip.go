// ABOUTME: Tooltip overlay shown while its trigger has focus
// ABOUTME: Text is NFC-normalized and wrapped, then positioned after mount

package ui

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/apuya/react-basics-ui-sub003/internal/config"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/anchor"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/width"
)

const tooltipMaxWidth = 32

// Tooltip is a short label anchored to a trigger.
type Tooltip struct {
	mountedPanel
	text     string
	maxWidth int
	styles   Styles
}

// NewTooltip creates a hidden tooltip for trigger.
func NewTooltip(text string, trigger *anchor.Ref, o config.Overlay, env Env) *Tooltip {
	return &Tooltip{
		mountedPanel: newMountedPanel("tooltip", trigger, o, env),
		text:         text,
		maxWidth:     tooltipMaxWidth,
		styles:       DefaultStyles(),
	}
}

// Show renders the tooltip and schedules its positioning frame.
func (t *Tooltip) Show() { t.show(t.render()) }

// Hide removes the tooltip.
func (t *Tooltip) Hide() { t.hide() }

// Unmount hides the tooltip and releases its controller.
func (t *Tooltip) Unmount() { t.unmount() }

// IsOpen reports whether the tooltip is shown.
func (t *Tooltip) IsOpen() bool { return t.isOpen() }

// Layer returns the positioned panel once the frame has run.
func (t *Tooltip) Layer() (tui.Layer, bool) { return t.layer() }

func (t *Tooltip) render() string {
	text := norm.NFC.String(strings.TrimSpace(t.text))
	lines := width.Wrap(text, t.maxWidth)
	return t.styles.Tooltip.Render(strings.Join(lines, "\n"))
}
