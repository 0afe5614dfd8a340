package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"catconf/internal/codec"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	want := Config{File: "settings.ini", LineEnding: "lf", Padding: false, LogLevel: "warn"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Default() mismatch (-want +got):\n%s", diff)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("Validate(Default()) = %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load(missing) mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "file = \"/etc/app/settings.ini\"\nline_ending = \"crlf\"\npadding = true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{File: "/etc/app/settings.ini", LineEnding: "crlf", Padding: true, LogLevel: "warn"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	le, err := cfg.Format()
	if err != nil || le != codec.CRLF {
		t.Errorf("Format() = %v, %v; want crlf", le, err)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("file = [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parsing preferences") {
		t.Errorf("Load(invalid) err = %v, want parsing error", err)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Config{File: "x.ini", LineEnding: "cr", Padding: true, LogLevel: "debug"}

	if err := Write(path, cfg); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateReportsEveryError(t *testing.T) {
	err := Validate(Config{File: " ", LineEnding: "unix", LogLevel: "loud"})
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	for _, want := range []string{"file:", "line_ending:", "log_level:"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error missing %q: %v", want, err)
		}
	}
}

func TestPathFromEnv(t *testing.T) {
	t.Setenv(EnvConfig, "/tmp/custom.toml")
	got, err := Path()
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/custom.toml" {
		t.Errorf("Path() = %q, want /tmp/custom.toml", got)
	}
}

func TestResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := Write(path, Config{File: "from-file.ini", LineEnding: "lf", LogLevel: "warn"}); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfig, path)
	t.Setenv(EnvFile, "")
	t.Setenv(EnvLineEnding, "cr")
	t.Setenv(EnvPadding, "")
	t.Setenv(EnvLogLevel, "")

	cfg, gotPath, err := Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if gotPath != path {
		t.Errorf("path = %q, want %q", gotPath, path)
	}
	if cfg.File != "from-file.ini" {
		t.Errorf("File = %q, want from-file.ini", cfg.File)
	}
	if cfg.LineEnding != "cr" {
		t.Errorf("LineEnding = %q, want cr (env override)", cfg.LineEnding)
	}
}
