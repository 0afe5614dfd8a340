// Package log configures the zerolog logger shared by catconf components.
package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// EnvLevel names the environment variable consulted when Config.Level is empty.
const EnvLevel = "CATCONF_LOG_LEVEL"

// DefaultLevel keeps routine operations quiet while still surfacing parse
// warnings and I/O failures.
const DefaultLevel = zerolog.WarnLevel

// Config captures options for building a logger.
type Config struct {
	Level  string    // optional level name ("debug", "info", ...)
	Output io.Writer // defaults to os.Stderr
	// Console forces human-readable output. When false, console output is
	// still used if Output is a terminal.
	Console bool
}

var (
	mu   sync.Mutex
	base = zerolog.Nop()
	set  bool
)

// New builds a logger from cfg without touching the shared base logger.
func New(cfg Config) zerolog.Logger {
	level := DefaultLevel
	name := cfg.Level
	if name == "" {
		name = os.Getenv(EnvLevel)
	}
	if name != "" {
		if parsed, err := zerolog.ParseLevel(name); err == nil {
			level = parsed
		}
	}

	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}
	if cfg.Console || isTerminal(writer) {
		writer = zerolog.ConsoleWriter{Out: writer, TimeFormat: time.Kitchen}
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// Configure replaces the shared base logger.
func Configure(cfg Config) {
	l := New(cfg)
	mu.Lock()
	defer mu.Unlock()
	base = l
	set = true
}

// Base returns the shared logger. Until Configure is called it builds one
// from the environment on first use.
func Base() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if !set {
		base = New(Config{})
		set = true
	}
	return base
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str("component", component).Logger()
}

// ParseLevel reports whether name is a level zerolog understands.
func ParseLevel(name string) (zerolog.Level, error) {
	return zerolog.ParseLevel(name)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
