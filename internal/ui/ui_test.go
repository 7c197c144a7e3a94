// ABOUTME: Shared helpers for overlay tests
// ABOUTME: Deterministic env with a manual scheduler and a command drainer for tea.Cmd trees

package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/apuya/react-basics-ui-sub003/pkg/tui"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/anchor"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/eventbus"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/placement"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/width"
)

func testEnv(w, h int) (Env, *anchor.ManualScheduler) {
	bus := eventbus.New[placement.Viewport]()
	bus.Publish(placement.Viewport{Width: w, Height: h})
	sched := anchor.NewManualScheduler()
	return Env{Viewport: anchor.BusViewport{Bus: bus}, Frames: sched, Resize: bus}, sched
}

func triggerAt(top, left, w, h int) *anchor.Ref {
	r := anchor.NewRef()
	r.Set(placement.RectFrom(top, left, w, h))
	return r
}

func layerText(l tui.Layer) string {
	return width.StripANSI(strings.Join(l.Lines, "\n"))
}

// drain runs cmd and any batched commands, returning every message produced.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}
