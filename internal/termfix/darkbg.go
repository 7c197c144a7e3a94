// ABOUTME: Fixes the lipgloss background guess before bubbletea can query the terminal
// ABOUTME: Imported with _ by the anchor binary ahead of anything that pulls in bubbletea

package termfix

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// LightEnv set to any non-empty value selects light panel colors.
const LightEnv = "ANCHOR_LIGHT_BACKGROUND"

func init() {
	// An explicit answer stops lipgloss from sending OSC 11, whose reply
	// would otherwise arrive on stdin while the demo reads keys. This
	// package must not import bubbletea so that it initializes first.
	lipgloss.SetHasDarkBackground(os.Getenv(LightEnv) == "")
}
