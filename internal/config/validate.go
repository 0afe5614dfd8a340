package config

import (
	"fmt"
	"strings"

	"catconf/internal/codec"
	xlog "catconf/internal/log"
)

// Validate checks every field of cfg. It returns an error describing every
// invalid value found, or nil if all values are valid.
func Validate(cfg Config) error {
	var errs []string

	if strings.TrimSpace(cfg.File) == "" {
		errs = append(errs, "file: must not be empty")
	}
	if _, err := codec.ParseLineEnding(cfg.LineEnding); err != nil {
		errs = append(errs, fmt.Sprintf("line_ending: %v", err))
	}
	if cfg.LogLevel != "" {
		if _, err := xlog.ParseLevel(cfg.LogLevel); err != nil {
			errs = append(errs, fmt.Sprintf("log_level: invalid value %q", cfg.LogLevel))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("preferences validation failed:\n  %s", strings.Join(errs, "\n  "))
}
