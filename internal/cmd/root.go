package cmd

import (
	"fmt"
	"io"
	"os"
	"sync"

	"catconf/internal/config"
	xlog "catconf/internal/log"
	"catconf/internal/store"

	"github.com/spf13/cobra"
)

// AppProvider lazily initializes the App on first use.
type AppProvider struct {
	once sync.Once
	app  *App
	err  error

	// Overrides captured from flags before Execute()
	File       string
	LineEnding string
	Padding    bool
	PaddingSet bool
	LogLevel   string
	JSONOutput bool
	Out        io.Writer
	Err        io.Writer
}

// Get returns the App, initializing it on first call.
func (p *AppProvider) Get() (*App, error) {
	p.once.Do(func() {
		if p.app == nil {
			p.app, p.err = p.init()
		}
	})
	return p.app, p.err
}

// NewTestProvider creates a provider pre-initialized with the given App.
// Used for testing commands with a test App.
func NewTestProvider(app *App) *AppProvider {
	return &AppProvider{
		app:        app,
		Out:        app.Out,
		Err:        app.Err,
		JSONOutput: app.JSON,
	}
}

// Prefs resolves preferences and applies flag overrides without opening the
// settings file.
func (p *AppProvider) Prefs() (config.Config, string, error) {
	if p.app != nil {
		return p.app.Prefs, p.app.PrefsPath, nil
	}

	cfg, path, err := config.Resolve()
	if err != nil {
		return config.Config{}, path, err
	}
	if p.File != "" {
		cfg.File = p.File
	}
	if p.LineEnding != "" {
		cfg.LineEnding = p.LineEnding
	}
	if p.PaddingSet {
		cfg.Padding = p.Padding
	}
	if p.LogLevel != "" {
		cfg.LogLevel = p.LogLevel
	}
	return cfg, path, nil
}

func (p *AppProvider) init() (*App, error) {
	cfg, path, err := p.Prefs()
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	lineEnding, err := cfg.Format()
	if err != nil {
		return nil, err
	}

	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := p.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	xlog.Configure(xlog.Config{Level: cfg.LogLevel, Output: errOut})
	logger := xlog.WithComponent("cli")

	s, err := store.New(cfg.File, lineEnding, cfg.Padding)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", cfg.File, err)
	}

	return &App{
		Store:     s,
		Prefs:     cfg,
		PrefsPath: path,
		Logger:    logger,
		Out:       out,
		Err:       errOut,
		JSON:      p.JSONOutput,
	}, nil
}

// Execute runs the CLI.
func Execute() error {
	provider := &AppProvider{
		Out: os.Stdout,
		Err: os.Stderr,
	}

	rootCmd := newRootCmd(provider)
	return rootCmd.Execute()
}

// newRootCmd creates the root command with all subcommands.
func newRootCmd(provider *AppProvider) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "catconf",
		Short: "Read and edit categorized settings files",
		Long: `catconf manages settings stored in a categorized, INI-like text file:

  [category]
  key=value

Settings are grouped by category and written in sorted order, so saving the
same settings always produces the same bytes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			provider.PaddingSet = cmd.Flags().Changed("padding")
		},
	}

	// Global flags - these populate the provider config
	rootCmd.PersistentFlags().StringVarP(&provider.File, "file", "f", "", "Settings file (default from preferences)")
	rootCmd.PersistentFlags().StringVar(&provider.LineEnding, "line-ending", "", "Line ending for writes: lf, crlf or cr")
	rootCmd.PersistentFlags().BoolVar(&provider.Padding, "padding", false, "Write \"key = value\" instead of \"key=value\"")
	rootCmd.PersistentFlags().StringVar(&provider.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&provider.JSONOutput, "json", false, "Output in JSON format")

	// Register all commands
	rootCmd.AddCommand(newGetCmd(provider))
	rootCmd.AddCommand(newSetCmd(provider))
	rootCmd.AddCommand(newUnsetCmd(provider))
	rootCmd.AddCommand(newListCmd(provider))
	rootCmd.AddCommand(newCategoriesCmd(provider))
	rootCmd.AddCommand(newFmtCmd(provider))
	rootCmd.AddCommand(newExportCmd(provider))
	rootCmd.AddCommand(newImportCmd(provider))
	rootCmd.AddCommand(newWatchCmd(provider))
	rootCmd.AddCommand(newPrefsCmd(provider))
	rootCmd.AddCommand(newVersionCmd(provider))

	return rootCmd
}
