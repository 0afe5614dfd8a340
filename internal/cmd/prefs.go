package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"catconf/internal/config"

	"github.com/spf13/cobra"
)

// newPrefsCmd creates the "prefs" command with subcommands.
func newPrefsCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or initialize catconf preferences",
		Long: `Manage catconf's own preferences.

Preferences are read from $CATCONF_CONFIG or catconf/config.toml in the user
configuration directory, then overridden by CATCONF_* environment variables
and command-line flags.

Subcommands:
  show  Print the effective preferences
  init  Write a default preferences file`,
	}

	cmd.AddCommand(newPrefsShowCmd(provider))
	cmd.AddCommand(newPrefsInitCmd(provider))

	return cmd
}

// newPrefsShowCmd creates the "prefs show" subcommand.
func newPrefsShowCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := provider.Prefs()
			if err != nil {
				return err
			}
			validErr := config.Validate(cfg)

			if provider.JSONOutput {
				result := map[string]interface{}{
					"path":        path,
					"file":        cfg.File,
					"line_ending": cfg.LineEnding,
					"padding":     cfg.Padding,
					"log_level":   cfg.LogLevel,
					"valid":       validErr == nil,
				}
				return json.NewEncoder(provider.Out).Encode(result)
			}

			fmt.Fprintf(provider.Out, "Preferences (%s):\n", path)
			fmt.Fprintf(provider.Out, "  file = %s\n", cfg.File)
			fmt.Fprintf(provider.Out, "  line_ending = %s\n", cfg.LineEnding)
			fmt.Fprintf(provider.Out, "  padding = %t\n", cfg.Padding)
			fmt.Fprintf(provider.Out, "  log_level = %s\n", cfg.LogLevel)
			if validErr != nil {
				fmt.Fprintln(provider.Out, validErr)
			}
			return nil
		},
	}

	return cmd
}

// newPrefsInitCmd creates the "prefs init" subcommand.
func newPrefsInitCmd(provider *AppProvider) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default preferences file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("preferences already exist at %s (use --force to overwrite)", path)
				}
			}
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			fmt.Fprintf(provider.Out, "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing preferences file")
	return cmd
}
