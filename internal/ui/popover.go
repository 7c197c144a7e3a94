// ABOUTME: Popover overlay toggled by its trigger, with a markdown body
// ABOUTME: Body rendered by glamour; positioned one frame after it is shown

package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/apuya/react-basics-ui-sub003/internal/config"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/anchor"
)

const defaultPopoverWidth = 40

// Popover is a titled panel with rich text.
type Popover struct {
	mountedPanel
	title  string
	body   string
	width  int
	md     *MarkdownRenderer
	styles Styles
}

// NewPopover creates a closed popover for trigger. The panel is o.Width
// cells wide, or 40 when unset.
func NewPopover(title, body string, trigger *anchor.Ref, o config.Overlay, env Env) *Popover {
	w := o.Width
	if w <= 0 {
		w = defaultPopoverWidth
	}
	return &Popover{
		mountedPanel: newMountedPanel("popover", trigger, o, env),
		title:        title,
		body:         body,
		width:        w,
		md:           NewMarkdownRenderer("dark"),
		styles:       DefaultStyles(),
	}
}

// Toggle opens a closed popover and closes an open one.
func (p *Popover) Toggle() {
	if p.isOpen() {
		p.hide()
		return
	}
	p.show(p.render())
}

// Hide closes the popover.
func (p *Popover) Hide() { p.hide() }

// Unmount closes the popover and releases its controller.
func (p *Popover) Unmount() { p.unmount() }

// IsOpen reports whether the popover is shown.
func (p *Popover) IsOpen() bool { return p.isOpen() }

// Layer returns the positioned panel once the frame has run.
func (p *Popover) Layer() (tui.Layer, bool) { return p.layer() }

func (p *Popover) render() string {
	// Border and padding take four columns.
	inner := max(p.width-4, 8)
	body := p.md.Render(p.body, inner)
	content := lipgloss.JoinVertical(lipgloss.Left, p.styles.Header.Render(p.title), body)
	return p.styles.Panel.Width(inner + 2).Render(content)
}
