// ABOUTME: demo command: runs the interactive overlay demo full-screen
// ABOUTME: Logs go to ~/.anchor/anchor.log while the demo owns the terminal

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/apuya/react-basics-ui-sub003/internal/config"
	"github.com/apuya/react-basics-ui-sub003/internal/log"
	"github.com/apuya/react-basics-ui-sub003/internal/ui"
)

func (c *cli) demoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Interactive demo of tooltips, popovers, menus and a date picker",
		Long: `Interactive demo of tooltips, popovers, menus and a date picker.

Tab moves between triggers, enter opens the focused overlay, esc closes
everything. Edits to the config file are applied while the demo runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.settings()
			if err != nil {
				return err
			}

			logPath := config.LogFile()
			if err := config.EnsureDir(filepath.Dir(logPath)); err != nil {
				return fmt.Errorf("creating log dir: %w", err)
			}
			f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("opening log: %w", err)
			}
			defer f.Close()
			log.SetOutput(f)
			defer log.SetOutput(os.Stderr)

			watch := c.configPath
			if watch == "" {
				watch = config.ConfigFile()
			}
			c.logger.Info("demo starting, watching %s", watch)
			return ui.Run(s, watch)
		},
	}
}
