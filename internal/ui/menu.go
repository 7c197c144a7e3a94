// ABOUTME: Dropdown menu overlay with fuzzy filtering as the user types
// ABOUTME: Panel size follows the filtered list; placement resolved synchronously during render

package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/apuya/react-basics-ui-sub003/internal/config"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/anchor"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/fuzzy"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/placement"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/width"
)

const (
	menuItemWidth  = 20
	menuMaxVisible = 8
)

// Menu is a filterable list of actions.
type Menu struct {
	trigger *anchor.Ref
	content *anchor.Ref
	ctrl    *anchor.SyncController
	o       config.Overlay
	env     Env
	keys    KeyMap
	styles  Styles

	items   []string
	query   string
	matches []fuzzy.Match
	cursor  int
	open    bool
	chosen  string
}

// NewMenu creates a closed menu over items.
func NewMenu(items []string, trigger *anchor.Ref, o config.Overlay, env Env) *Menu {
	content := anchor.NewRef()
	m := &Menu{
		trigger: trigger,
		content: content,
		ctrl:    anchor.NewSyncController(trigger, content, env.Viewport, env.options("menu", o)...),
		o:       o,
		env:     env,
		keys:    DefaultKeyMap(),
		styles:  DefaultStyles(),
		items:   items,
	}
	m.filter()
	return m
}

// Open shows the menu with an empty query.
func (m *Menu) Open() {
	m.open = true
	m.query = ""
	m.filter()
	m.remeasure()
	m.ctrl.SetOpen(true)
}

// Close hides the menu.
func (m *Menu) Close() {
	m.open = false
	m.ctrl.SetOpen(false)
	m.content.Clear()
}

// Toggle opens a closed menu and closes an open one.
func (m *Menu) Toggle() {
	if m.open {
		m.Close()
		return
	}
	m.Open()
}

// Unmount closes the menu and releases its controller.
func (m *Menu) Unmount() {
	m.Close()
	m.ctrl.Close()
}

// IsOpen reports whether the menu is shown.
func (m *Menu) IsOpen() bool { return m.open }

// Query returns the current filter text.
func (m *Menu) Query() string { return m.query }

// Visible returns the entries that match the query, best first.
func (m *Menu) Visible() []string {
	out := make([]string, len(m.matches))
	for i, match := range m.matches {
		out[i] = match.Str
	}
	return out
}

// Chosen returns the last entry confirmed with enter.
func (m *Menu) Chosen() string { return m.chosen }

// HandleKey edits the query, moves the cursor, or confirms. It reports
// whether the key was used.
func (m *Menu) HandleKey(msg tea.KeyMsg) bool {
	if !m.open {
		return false
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.matches)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Choose):
		if len(m.matches) > 0 {
			m.chosen = m.matches[m.cursor].Str
		}
		m.Close()
		return true
	case key.Matches(msg, m.keys.Close):
		m.Close()
		return true
	case key.Matches(msg, m.keys.Delete):
		if r := []rune(m.query); len(r) > 0 {
			m.query = string(r[:len(r)-1])
			m.filter()
		}
	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		m.query += string(msg.Runes)
		m.filter()
	default:
		return false
	}
	m.remeasure()
	m.ctrl.UpdatePosition()
	return true
}

// Layer positions the menu using the side and align resolved for this render.
func (m *Menu) Layer() (tui.Layer, bool) {
	if !m.open {
		return tui.Layer{}, false
	}
	p := m.ctrl.Placement()
	rect, ok := m.trigger.Bounds()
	if !ok {
		return tui.Layer{}, false
	}
	vp, ok := m.env.Viewport.Viewport()
	if !ok {
		return tui.Layer{}, false
	}

	panel := m.render()
	w, h := width.Block(panel)
	res := placement.Place(placement.Request{
		Trigger:  rect,
		Content:  placement.Size{Width: w, Height: h},
		Viewport: vp,
		Padding:  m.o.Padding,
		Gap:      m.o.Gap,
	}, p)
	return tui.NewLayer(panel, res.Top, res.Left), true
}

func (m *Menu) filter() {
	m.matches = fuzzy.Filter(m.query, m.items)
	if m.cursor >= len(m.matches) {
		m.cursor = max(len(m.matches)-1, 0)
	}
}

func (m *Menu) remeasure() {
	w, h := width.Block(m.render())
	m.content.Set(placement.RectFrom(0, 0, w, h))
}

func (m *Menu) render() string {
	lines := []string{m.styles.Muted.Render("> ") + m.query}

	if len(m.matches) == 0 {
		lines = append(lines, m.styles.Muted.Render("no matches"))
	}
	start := max(m.cursor-menuMaxVisible+1, 0)
	end := min(start+menuMaxVisible, len(m.matches))
	for i := start; i < end; i++ {
		match := m.matches[i]
		label := width.Truncate(match.Str, menuItemWidth)
		if width.VisibleWidth(label) == width.VisibleWidth(match.Str) {
			label = fuzzy.Highlight(match, func(s string) string { return m.styles.Match.Render(s) })
		}
		label = width.PadRight(label, menuItemWidth)
		if i == m.cursor {
			label = m.styles.Selected.Render(width.StripANSI(label))
		}
		lines = append(lines, label)
	}
	return m.styles.Panel.Render(strings.Join(lines, "\n"))
}
