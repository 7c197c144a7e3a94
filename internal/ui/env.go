// ABOUTME: Shared wiring for overlays: viewport, frame scheduler, and resize bus
// ABOUTME: mountedPanel holds the render-then-position state of MountController overlays

package ui

import (
	"github.com/apuya/react-basics-ui-sub003/internal/config"
	"github.com/apuya/react-basics-ui-sub003/internal/log"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/anchor"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/eventbus"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/placement"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/width"
)

// Env is what every overlay needs from its host.
type Env struct {
	Viewport anchor.ViewportSource
	Frames   anchor.Scheduler
	Resize   *eventbus.Bus[placement.Viewport]
}

// options builds the controller options for the overlay called name. Its
// debug lines are prefixed with "anchor/<name>".
func (e Env) options(name string, o config.Overlay) []anchor.Option {
	opts := append(o.Options(), anchor.WithLogger(log.Named("anchor/"+name)))
	if e.Resize != nil {
		opts = append(opts, anchor.WithResizeBus(e.Resize))
	}
	return opts
}

// mountedPanel renders a panel, records its size, and lets a
// MountController position it on the next frame. Nothing is drawn until the
// frame has run.
type mountedPanel struct {
	content *anchor.Ref
	ctrl    *anchor.MountController
	panel   string
}

func newMountedPanel(name string, trigger *anchor.Ref, o config.Overlay, env Env) mountedPanel {
	content := anchor.NewRef()
	return mountedPanel{
		content: content,
		ctrl:    anchor.NewMountController(trigger, content, env.Viewport, env.Frames, env.options(name, o)...),
	}
}

func (m *mountedPanel) show(panel string) {
	m.panel = panel
	w, h := width.Block(panel)
	m.content.Set(placement.RectFrom(0, 0, w, h))
	m.ctrl.Show()
}

func (m *mountedPanel) isOpen() bool { return m.ctrl.Visible() }

func (m *mountedPanel) hide() {
	m.ctrl.Hide()
	m.content.Clear()
	m.panel = ""
}

func (m *mountedPanel) unmount() {
	m.hide()
	m.ctrl.Unmount()
}

func (m *mountedPanel) layer() (tui.Layer, bool) {
	if !m.ctrl.Visible() {
		return tui.Layer{}, false
	}
	pos, ready := m.ctrl.Position()
	if !ready {
		return tui.Layer{}, false
	}
	return tui.NewLayer(m.panel, pos.Top, pos.Left), true
}
