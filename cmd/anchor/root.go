// ABOUTME: Root cobra command with the global --config and --verbose flags
// ABOUTME: cli carries state shared by subcommands, including the terminal used for sizes

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apuya/react-basics-ui-sub003/internal/config"
	"github.com/apuya/react-basics-ui-sub003/internal/log"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/terminal"
)

type cli struct {
	configPath string
	verbose    bool
	term       terminal.Terminal
	logger     log.Logger
}

func newCLI() *cli {
	return &cli{
		term:   terminal.NewProcessTerminal(),
		logger: log.Named("anchor"),
	}
}

func (c *cli) root() *cobra.Command {
	root := &cobra.Command{
		Use:   "anchor",
		Short: "Anchored overlay placement for terminal UIs",
		Long: `anchor positions floating panels (tooltips, popovers, menus, date pickers)
next to a trigger, flipping to the opposite side or alignment when the
preferred one would leave the terminal.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.verbose {
				log.SetLevel(log.LevelDebug)
			}
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("anchor %s (%s) built %s\n", version, commit, date))
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "settings file (default ~/.anchor/config.yaml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(c.placeCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.configCommand())

	return root
}

// settings loads the config file and applies its log level unless
// --verbose already raised it.
func (c *cli) settings() (*config.Settings, error) {
	s, err := config.Load(c.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if !c.verbose {
		if l, ok := log.ParseLevel(s.LogLevel); ok {
			log.SetLevel(l)
		}
	}
	return s, nil
}
