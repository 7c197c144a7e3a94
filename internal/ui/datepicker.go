// ABOUTME: Date picker overlay with a month grid navigated by arrow keys
// ABOUTME: Fixed-size panel, so side and align are resolved synchronously during render

package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/apuya/react-basics-ui-sub003/internal/config"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/anchor"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/placement"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/width"
)

const (
	gridWeeks = 6
	gridWidth = 7*2 + 6
	weekdays  = "Mo Tu We Th Fr Sa Su"
)

// DatePicker lets the user pick a day from a calendar panel.
type DatePicker struct {
	trigger *anchor.Ref
	content *anchor.Ref
	ctrl    *anchor.SyncController
	o       config.Overlay
	env     Env
	keys    KeyMap
	styles  Styles

	open      bool
	cursor    time.Time
	chosen    time.Time
	hasChosen bool
}

// NewDatePicker creates a closed picker whose cursor starts at today.
func NewDatePicker(trigger *anchor.Ref, o config.Overlay, env Env, today time.Time) *DatePicker {
	content := anchor.NewRef()
	return &DatePicker{
		trigger: trigger,
		content: content,
		ctrl:    anchor.NewSyncController(trigger, content, env.Viewport, env.options("datepicker", o)...),
		o:       o,
		env:     env,
		keys:    DefaultKeyMap(),
		styles:  DefaultStyles(),
		cursor:  dateOnly(today),
	}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Open shows the calendar.
func (d *DatePicker) Open() {
	d.open = true
	w, h := width.Block(d.render())
	d.content.Set(placement.RectFrom(0, 0, w, h))
	d.ctrl.SetOpen(true)
}

// Close hides the calendar.
func (d *DatePicker) Close() {
	d.open = false
	d.ctrl.SetOpen(false)
	d.content.Clear()
}

// Toggle opens a closed picker and closes an open one.
func (d *DatePicker) Toggle() {
	if d.open {
		d.Close()
		return
	}
	d.Open()
}

// Unmount closes the picker and releases its controller.
func (d *DatePicker) Unmount() {
	d.Close()
	d.ctrl.Close()
}

// IsOpen reports whether the calendar is shown.
func (d *DatePicker) IsOpen() bool { return d.open }

// Cursor returns the highlighted day.
func (d *DatePicker) Cursor() time.Time { return d.cursor }

// Chosen returns the last day confirmed with enter.
func (d *DatePicker) Chosen() (time.Time, bool) { return d.chosen, d.hasChosen }

// HandleKey moves the cursor or confirms. It reports whether the key was used.
func (d *DatePicker) HandleKey(msg tea.KeyMsg) bool {
	if !d.open {
		return false
	}
	switch {
	case key.Matches(msg, d.keys.Left):
		d.cursor = d.cursor.AddDate(0, 0, -1)
	case key.Matches(msg, d.keys.Right):
		d.cursor = d.cursor.AddDate(0, 0, 1)
	case key.Matches(msg, d.keys.Up):
		d.cursor = d.cursor.AddDate(0, 0, -7)
	case key.Matches(msg, d.keys.Down):
		d.cursor = d.cursor.AddDate(0, 0, 7)
	case key.Matches(msg, d.keys.Choose):
		d.chosen, d.hasChosen = d.cursor, true
		d.Close()
	case key.Matches(msg, d.keys.Close):
		d.Close()
	default:
		return false
	}
	return true
}

// Layer positions the calendar using the side and align resolved for this
// render.
func (d *DatePicker) Layer() (tui.Layer, bool) {
	if !d.open {
		return tui.Layer{}, false
	}
	p := d.ctrl.Placement()
	rect, ok := d.trigger.Bounds()
	if !ok {
		return tui.Layer{}, false
	}
	vp, ok := d.env.Viewport.Viewport()
	if !ok {
		return tui.Layer{}, false
	}

	panel := d.render()
	w, h := width.Block(panel)
	res := placement.Place(placement.Request{
		Trigger:  rect,
		Content:  placement.Size{Width: w, Height: h},
		Viewport: vp,
		Padding:  d.o.Padding,
		Gap:      d.o.Gap,
	}, p)
	return tui.NewLayer(panel, res.Top, res.Left), true
}

func (d *DatePicker) render() string {
	first := time.Date(d.cursor.Year(), d.cursor.Month(), 1, 0, 0, 0, 0, time.UTC)
	// Monday-first column of the 1st.
	offset := (int(first.Weekday()) + 6) % 7
	days := first.AddDate(0, 1, -1).Day()

	title := d.cursor.Format("January 2006")
	pad := max((gridWidth-len(title))/2, 0)

	lines := []string{
		d.styles.Header.Render(strings.Repeat(" ", pad) + title),
		d.styles.Muted.Render(weekdays),
	}
	day := 1 - offset
	for range gridWeeks {
		cells := make([]string, 7)
		for c := range cells {
			switch {
			case day < 1 || day > days:
				cells[c] = "  "
			case day == d.cursor.Day():
				cells[c] = d.styles.Selected.Render(fmt.Sprintf("%2d", day))
			default:
				cells[c] = fmt.Sprintf("%2d", day)
			}
			day++
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return d.styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
