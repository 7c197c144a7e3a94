// ABOUTME: Entry point for the interactive demo
// ABOUTME: Creates the tea.Program, hot-reloads settings from the config file, blocks until exit

package ui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/apuya/react-basics-ui-sub003/internal/config"
)

// Run starts the demo and blocks until the user quits. When configPath is
// not empty the file is watched and changes are applied live.
func Run(s *config.Settings, configPath string) error {
	app := NewApp(s, time.Now())

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithOutput(os.Stderr),
	)

	if configPath != "" {
		w := config.NewWatcher(configPath, func(s *config.Settings) {
			p.Send(SettingsMsg{Settings: s})
		})
		w.Start()
		defer w.Stop()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("bubble tea: %w", err)
	}
	return nil
}
