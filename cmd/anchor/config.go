// ABOUTME: config command group: writes the default settings file
// ABOUTME: Refuses to overwrite an existing file unless --force is given

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/apuya/react-basics-ui-sub003/internal/config"
)

func (c *cli) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the settings file",
	}
	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configShowCommand())
	return cmd
}

func (c *cli) configInitCommand() *cobra.Command {
	var (
		path  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = c.configPath
			}
			if path == "" {
				path = config.ConfigFile()
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("checking %s: %w", path, err)
			}

			if err := config.Save(path, config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "where to write (default: --config or ~/.anchor/config.yaml)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

func (c *cli) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings after file and environment overrides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.settings()
			if err != nil {
				return err
			}
			return config.Encode(cmd.OutOrStdout(), s)
		},
	}
}
