// ABOUTME: Lipgloss styles for the demo screen and overlay panels
// ABOUTME: One palette built once; panels share a rounded border

package ui

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Styles is the palette used by every overlay.
type Styles struct {
	Title          lipgloss.Style
	Muted          lipgloss.Style
	Trigger        lipgloss.Style
	TriggerFocused lipgloss.Style
	Panel          lipgloss.Style
	Tooltip        lipgloss.Style
	Selected       lipgloss.Style
	Match          lipgloss.Style
	Header         lipgloss.Style
}

var stylesOnce = sync.OnceValue(func() Styles {
	border := lipgloss.RoundedBorder()
	accent := lipgloss.Color("208")
	dim := lipgloss.Color("245")

	return Styles{
		Title:          lipgloss.NewStyle().Bold(true).Foreground(accent),
		Muted:          lipgloss.NewStyle().Foreground(dim),
		Trigger:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		TriggerFocused: lipgloss.NewStyle().Bold(true).Reverse(true),
		Panel:          lipgloss.NewStyle().Border(border).BorderForeground(accent).Padding(0, 1),
		Tooltip:        lipgloss.NewStyle().Border(border).BorderForeground(dim).Padding(0, 1),
		Selected:       lipgloss.NewStyle().Reverse(true),
		Match:          lipgloss.NewStyle().Underline(true).Foreground(accent),
		Header:         lipgloss.NewStyle().Bold(true),
	}
})

// DefaultStyles returns the shared palette.
func DefaultStyles() Styles {
	return stylesOnce()
}
