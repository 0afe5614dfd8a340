package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// newGetCmd creates the "get" command.
func newGetCmd(provider *AppProvider) *cobra.Command {
	var def string

	cmd := &cobra.Command{
		Use:   "get <category> <key>",
		Short: "Get a setting value",
		Long: `Get the value of a setting.

Prints the bare value if the setting exists, or "category.key (not set)" if
missing. With --default, the fallback is printed instead.

Examples:
  catconf get window width
  catconf get window width --default 1024`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			hasDefault := cmd.Flags().Changed("default")
			category, key := args[0], args[1]
			s, ok := app.Store.Get(category, key)
			value := s.String()
			if !ok && hasDefault {
				value = def
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]interface{}{
					"category": category,
					"key":      key,
					"value":    value,
					"set":      ok,
				})
			}

			if ok || hasDefault {
				fmt.Fprintln(app.Out, value)
			} else {
				fmt.Fprintf(app.Out, "%s.%s (not set)\n", category, key)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&def, "default", "", "Value to print when the setting is missing")
	return cmd
}

// newSetCmd creates the "set" command.
func newSetCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <category> <key> <value>",
		Short: "Set a setting value",
		Long: `Set a setting and save the file.

Any "=" in the key is removed. Surrounding whitespace in the value is trimmed.

Examples:
  catconf set window width 800
  catconf set user name "Alice Smith"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			app.Store.Add(args[0], args[1], args[2])
			if err := app.Store.Save(); err != nil {
				return fmt.Errorf("setting %s.%s: %w", args[0], args[1], err)
			}

			s, _ := app.Store.Get(args[0], args[1])
			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]string{
					"category": s.Category(),
					"key":      s.Key(),
					"value":    s.String(),
				})
			}

			fmt.Fprintf(app.Out, "%s %s.%s = %s\n", app.SuccessColor("Set"), s.Category(), s.Key(), s.String())
			return nil
		},
	}

	return cmd
}

// newUnsetCmd creates the "unset" command.
func newUnsetCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unset <category> <key>",
		Short: "Remove a setting",
		Long: `Remove a setting and save the file.

The file is only rewritten when the setting existed.

Examples:
  catconf unset window width`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			category, key := args[0], args[1]
			_, removed := app.Store.Remove(category, key)
			if removed {
				if err := app.Store.Save(); err != nil {
					return fmt.Errorf("unsetting %s.%s: %w", category, key, err)
				}
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]interface{}{
					"category": category,
					"key":      key,
					"removed":  removed,
				})
			}

			if removed {
				fmt.Fprintf(app.Out, "Unset %s.%s\n", category, key)
			} else {
				fmt.Fprintf(app.Out, "%s %s.%s was not set\n", app.WarnColor("Note:"), category, key)
			}
			return nil
		},
	}

	return cmd
}

// newListCmd creates the "list" command.
func newListCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [category]",
		Short: "List settings",
		Long: `List settings grouped by category.

Categories and keys are sorted alphabetically. With a category argument only
that category is shown.

Examples:
  catconf list
  catconf list window --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			settings := app.Store.All()
			if len(args) == 1 {
				settings = app.Store.Category(args[0])
			}

			if app.JSON {
				grouped := make(map[string]map[string]string)
				for _, s := range settings {
					if grouped[s.Category()] == nil {
						grouped[s.Category()] = make(map[string]string)
					}
					grouped[s.Category()][s.Key()] = s.String()
				}
				return json.NewEncoder(app.Out).Encode(grouped)
			}

			if len(settings) == 0 {
				fmt.Fprintln(app.Out, "No settings")
				return nil
			}

			for i, s := range settings {
				if i == 0 || settings[i-1].Category() != s.Category() {
					if i > 0 {
						fmt.Fprintln(app.Out)
					}
					fmt.Fprintf(app.Out, "[%s]\n", s.Category())
				}
				fmt.Fprintf(app.Out, "  %s = %s\n", s.Key(), s.String())
			}
			return nil
		},
	}

	return cmd
}

// newCategoriesCmd creates the "categories" command.
func newCategoriesCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List category names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			categories := app.Store.Categories()
			if app.JSON {
				if categories == nil {
					categories = []string{}
				}
				return json.NewEncoder(app.Out).Encode(categories)
			}
			for _, c := range categories {
				fmt.Fprintln(app.Out, c)
			}
			return nil
		},
	}

	return cmd
}

// newFmtCmd creates the "fmt" command.
func newFmtCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Rewrite the settings file in canonical form",
		Long: `Load and save the settings file.

Sorts categories and keys, applies the configured padding and line ending, and
drops lines that could not be parsed (a warning is logged for each).

Examples:
  catconf fmt
  catconf fmt --line-ending crlf --padding`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			if err := app.Store.Save(); err != nil {
				return err
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]interface{}{
					"file":     app.Store.Path(),
					"settings": app.Store.Len(),
				})
			}
			fmt.Fprintf(app.Out, "%s %s (%d settings)\n", app.SuccessColor("Formatted"), app.Store.Path(), app.Store.Len())
			return nil
		},
	}

	return cmd
}
