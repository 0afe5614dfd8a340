package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"catconf/internal/store"
	"catconf/internal/watch"

	"github.com/spf13/cobra"
)

// newWatchCmd creates the "watch" command.
func newWatchCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reload the settings file whenever it changes",
		Long: `Watch the settings file and reload it after every change, printing the
number of settings loaded. Runs until interrupted.

Examples:
  catconf watch
  catconf watch --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := watch.New(app.Store, watch.OnReload(func(s *store.Store, err error) {
				if app.JSON {
					result := map[string]interface{}{"settings": s.Len()}
					if err != nil {
						result["error"] = err.Error()
					}
					json.NewEncoder(app.Out).Encode(result)
					return
				}
				if err != nil {
					fmt.Fprintf(app.Out, "%s %v\n", app.WarnColor("Reload failed:"), err)
					return
				}
				fmt.Fprintf(app.Out, "%s %d settings\n", app.SuccessColor("Reloaded"), s.Len())
			}))

			if !app.JSON {
				fmt.Fprintf(app.Out, "Watching %s (%d settings)\n", app.Store.Path(), app.Store.Len())
			}
			return w.Run(ctx)
		},
	}

	return cmd
}
