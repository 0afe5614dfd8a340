package config

import (
	"testing"
)

func TestApplyEnvOverrides_File(t *testing.T) {
	t.Setenv(EnvFile, "/srv/app.ini")

	cfg := Default()
	if err := ApplyEnvOverrides(&cfg); err != nil {
		t.Fatalf("ApplyEnvOverrides: %v", err)
	}
	if cfg.File != "/srv/app.ini" {
		t.Errorf("File = %q, want %q", cfg.File, "/srv/app.ini")
	}
}

func TestApplyEnvOverrides_Padding(t *testing.T) {
	t.Setenv(EnvPadding, "true")

	cfg := Default()
	if err := ApplyEnvOverrides(&cfg); err != nil {
		t.Fatalf("ApplyEnvOverrides: %v", err)
	}
	if !cfg.Padding {
		t.Error("Padding = false, want true")
	}
}

func TestApplyEnvOverrides_NoOverride(t *testing.T) {
	t.Setenv(EnvFile, "")
	t.Setenv(EnvLineEnding, "")
	t.Setenv(EnvPadding, "")
	t.Setenv(EnvLogLevel, "")

	cfg := Config{File: "keep.ini", LineEnding: "crlf", Padding: true, LogLevel: "info"}
	if err := ApplyEnvOverrides(&cfg); err != nil {
		t.Fatalf("ApplyEnvOverrides: %v", err)
	}
	if cfg.File != "keep.ini" || cfg.LineEnding != "crlf" || !cfg.Padding || cfg.LogLevel != "info" {
		t.Errorf("cfg = %+v, want unchanged", cfg)
	}
}

func TestApplyEnvOverrides_InvalidBool(t *testing.T) {
	t.Setenv(EnvPadding, "sometimes")

	cfg := Default()
	if err := ApplyEnvOverrides(&cfg); err == nil {
		t.Error("ApplyEnvOverrides() = nil, want error for invalid bool")
	}
}
