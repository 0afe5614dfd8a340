// Package config handles catconf's own preferences: which settings file to
// open and how to format it. Preferences come from built-in defaults, an
// optional TOML file, environment variables and finally command-line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"catconf/internal/codec"

	"github.com/BurntSushi/toml"
)

// Config represents the contents of the preferences file.
type Config struct {
	File       string `toml:"file" env:"CATCONF_FILE"`
	LineEnding string `toml:"line_ending" env:"CATCONF_LINE_ENDING"`
	Padding    bool   `toml:"padding" env:"CATCONF_PADDING"`
	LogLevel   string `toml:"log_level" env:"CATCONF_LOG_LEVEL"`
}

// Default returns the default preferences.
func Default() Config {
	return Config{
		File:       "settings.ini",
		LineEnding: codec.LF.String(),
		Padding:    false,
		LogLevel:   "warn",
	}
}

// Load reads the TOML preferences file at path on top of the defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading preferences: %w", err)
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing preferences: %w", err)
	}
	return cfg, nil
}

// Write writes cfg to path as TOML, creating parent directories.
func Write(path string, cfg Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating preferences directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing preferences: %w", err)
	}
	return nil
}

// WriteDefault writes the default preferences to path.
func WriteDefault(path string) error {
	return Write(path, Default())
}

// Format returns the codec line ending selected by cfg.
func (c Config) Format() (codec.LineEnding, error) {
	return codec.ParseLineEnding(c.LineEnding)
}
