package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvConfig overrides the location of the preferences file.
const EnvConfig = "CATCONF_CONFIG"

// Path returns the preferences file location: $CATCONF_CONFIG if set,
// otherwise catconf/config.toml under the user configuration directory.
func Path() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config directory: %w", err)
	}
	return filepath.Join(dir, "catconf", "config.toml"), nil
}

// Resolve loads preferences from Path and applies environment overrides.
// The returned path is where the preferences were (or would be) read from.
func Resolve() (Config, string, error) {
	path, err := Path()
	if err != nil {
		return Config{}, "", err
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, path, err
	}
	if err := ApplyEnvOverrides(&cfg); err != nil {
		return Config{}, path, err
	}
	return cfg, path, nil
}
