// ABOUTME: Demo screen with four anchored overlays on triggers placed near the edges
// ABOUTME: Publishes window sizes on the resize bus and dispatches measurement frames

package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/apuya/react-basics-ui-sub003/internal/config"
	"github.com/apuya/react-basics-ui-sub003/internal/log"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/anchor"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/eventbus"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/placement"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/width"
)

// Trigger indexes, in focus order.
const (
	focusTooltip = iota
	focusPopover
	focusDate
	focusMenu
	triggerCount
)

var triggerLabels = [triggerCount]string{"[ Tooltip ]", "[ Popover ]", "[ Date ]", "[ Menu ]"}

const popoverBody = "Panels flip to the **opposite side** when there is no room, " +
	"and switch between `start` and `end` alignment near the edges.\n\n" +
	"Resize the terminal to see them follow."

var menuItems = []string{"New file", "Open…", "Open recent", "Save", "Save as…", "Close", "Find", "Replace", "Settings", "Quit"}

// SettingsMsg delivers reloaded settings to the running app.
type SettingsMsg struct {
	Settings *config.Settings
}

// App is the demo's root model.
type App struct {
	width, height int
	today         time.Time

	bus      *eventbus.Bus[placement.Viewport]
	frames   *FrameScheduler
	env      Env
	triggers [triggerCount]*anchor.Ref
	focus    int

	tooltip *Tooltip
	popover *Popover
	date    *DatePicker
	menu    *Menu

	keys   KeyMap
	help   help.Model
	styles Styles
	status string
	logger log.Logger
}

// NewApp builds the demo from settings. today seeds the date picker.
func NewApp(s *config.Settings, today time.Time) *App {
	bus := eventbus.New[placement.Viewport]()
	frames := NewFrameScheduler(s.FrameInterval)
	a := &App{
		today:  today,
		bus:    bus,
		frames: frames,
		env: Env{
			Viewport: anchor.BusViewport{Bus: bus},
			Frames:   frames,
			Resize:   bus,
		},
		focus:  -1,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		styles: DefaultStyles(),
		logger: log.Named("ui"),
	}
	for i := range a.triggers {
		a.triggers[i] = anchor.NewRef()
	}
	a.build(s)
	return a
}

func (a *App) build(s *config.Settings) {
	a.tooltip = NewTooltip("Tooltips prefer the top side and never flip.", a.triggers[focusTooltip], s.Tooltip, a.env)
	a.popover = NewPopover("About placement", popoverBody, a.triggers[focusPopover], s.Popover, a.env)
	a.date = NewDatePicker(a.triggers[focusDate], s.DatePicker, a.env, a.today)
	a.menu = NewMenu(menuItems, a.triggers[focusMenu], s.Menu, a.env)
}

// applyRuntime picks up the settings that are not tied to an overlay.
func (a *App) applyRuntime(s *config.Settings) {
	a.frames.SetInterval(s.FrameInterval)
	if l, ok := log.ParseLevel(s.LogLevel); ok {
		log.SetLevel(l)
	} else {
		a.logger.Warn("ignoring unknown log level %q", s.LogLevel)
	}
}

func (a *App) unmountAll() {
	a.tooltip.Unmount()
	a.popover.Unmount()
	a.date.Unmount()
	a.menu.Unmount()
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		a.layout()
		a.bus.Publish(placement.Viewport{Width: msg.Width, Height: msg.Height})
	case FrameMsg:
		a.frames.Dispatch(msg)
	case SettingsMsg:
		a.logger.Info("applying reloaded settings")
		a.applyRuntime(msg.Settings)
		a.unmountAll()
		a.build(msg.Settings)
		a.focus = -1
	case tea.KeyMsg:
		cmd = a.handleKey(msg)
	}
	return a, tea.Batch(cmd, a.frames.Cmd())
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	if a.date.IsOpen() && a.date.HandleKey(msg) {
		if d, ok := a.date.Chosen(); ok && !a.date.IsOpen() {
			a.status = "picked " + d.Format("Mon 2 Jan 2006")
		}
		return nil
	}
	if a.menu.IsOpen() && a.menu.HandleKey(msg) {
		if c := a.menu.Chosen(); c != "" && !a.menu.IsOpen() {
			a.status = "chose " + c
		}
		return nil
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit
	case key.Matches(msg, a.keys.Next):
		a.setFocus((a.focus + 1) % triggerCount)
	case key.Matches(msg, a.keys.Prev):
		a.setFocus((a.focus + triggerCount - 1) % triggerCount)
	case key.Matches(msg, a.keys.Toggle):
		a.toggleFocused()
	case key.Matches(msg, a.keys.Close):
		a.closeAll()
	}
	return nil
}

func (a *App) setFocus(i int) {
	if a.focus == focusTooltip {
		a.tooltip.Hide()
	}
	a.focus = i
	if i == focusTooltip {
		a.tooltip.Show()
	}
}

// toggleFocused ignores triggers that have not been laid out yet.
func (a *App) toggleFocused() {
	if a.focus < 0 || !a.triggers[a.focus].IsSet() {
		return
	}
	switch a.focus {
	case focusTooltip:
		if a.tooltip.IsOpen() {
			a.tooltip.Hide()
		} else {
			a.tooltip.Show()
		}
	case focusPopover:
		a.popover.Toggle()
	case focusDate:
		a.date.Toggle()
	case focusMenu:
		a.menu.Toggle()
	}
}

func (a *App) closeAll() {
	a.tooltip.Hide()
	a.popover.Hide()
	a.date.Close()
	a.menu.Close()
}

// layout places the triggers: tooltip in the middle, popover top-left,
// date picker bottom-left, and menu bottom-right, so the bottom-side
// overlays have to flip.
func (a *App) layout() {
	if a.width <= 0 || a.height <= 0 {
		return
	}
	w, h := a.width, a.height
	bottom := max(h-3, 1)
	pos := [triggerCount][2]int{
		focusTooltip: {h / 2, (w - width.VisibleWidth(triggerLabels[focusTooltip])) / 2},
		focusPopover: {2, 2},
		focusDate:    {bottom, 2},
		focusMenu:    {bottom, w - width.VisibleWidth(triggerLabels[focusMenu]) - 2},
	}
	for i, p := range pos {
		a.triggers[i].Set(placement.RectFrom(p[0], max(p[1], 0), width.VisibleWidth(triggerLabels[i]), 1))
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return ""
	}

	bg := make([]string, a.height)
	bg[0] = a.styles.Title.Render("anchor demo")
	if a.status != "" {
		bg[0] += "  " + a.styles.Muted.Render(a.status)
	}
	bg[a.height-1] = a.help.View(a.keys)

	layers := make([]tui.Layer, 0, triggerCount+4)
	for i, ref := range a.triggers {
		r, ok := ref.Bounds()
		if !ok {
			continue
		}
		style := a.styles.Trigger
		if i == a.focus {
			style = a.styles.TriggerFocused
		}
		layers = append(layers, tui.NewLayer(style.Render(triggerLabels[i]), r.Top, r.Left))
	}

	for _, o := range []interface{ Layer() (tui.Layer, bool) }{a.popover, a.date, a.menu, a.tooltip} {
		if l, ok := o.Layer(); ok {
			layers = append(layers, l)
		}
	}

	return strings.Join(tui.Composite(bg, a.width, a.height, layers...), "\n")
}

// String summarizes the open overlays, for logs.
func (a *App) String() string {
	return fmt.Sprintf("App{%dx%d focus=%d tooltip=%v popover=%v date=%v menu=%v}",
		a.width, a.height, a.focus, a.tooltip.IsOpen(), a.popover.IsOpen(), a.date.IsOpen(), a.menu.IsOpen())
}
