// ABOUTME: Key bindings for the demo, shared with the overlays that take input
// ABOUTME: Implements help.KeyMap so the footer lists the active keys

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the demo reacts to.
type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
	Close  key.Binding
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Choose key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Toggle: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open/close")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
		Delete: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Toggle, k.Close, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Toggle, k.Close},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Choose, k.Delete, k.Quit},
	}
}
