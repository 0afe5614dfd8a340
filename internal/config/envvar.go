package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

// Environment variable names for catconf preferences.
const (
	EnvFile       = "CATCONF_FILE"        // Settings file to open
	EnvLineEnding = "CATCONF_LINE_ENDING" // lf, crlf or cr
	EnvPadding    = "CATCONF_PADDING"     // "true" writes key = value
	EnvLogLevel   = "CATCONF_LOG_LEVEL"   // zerolog level name
)

// ApplyEnvOverrides replaces fields of cfg whose environment variable is set
// to a non-empty value. Unset variables leave the field untouched.
func ApplyEnvOverrides(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}
	return nil
}
