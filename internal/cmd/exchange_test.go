package cmd

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportCmd_YAML(t *testing.T) {
	app, out := setupTestApp(t, "[window]\nwidth=800\nheight=600\n\n[user]\nname=alice\n\n")

	cmd := newExportCmd(NewTestProvider(app))
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	want := "user:\n  name: alice\nwindow:\n  height: \"600\"\n  width: \"800\"\n"
	if got := out.String(); got != want {
		t.Errorf("export = %q, want %q", got, want)
	}
}

func TestExportCmd_JSON(t *testing.T) {
	app, out := setupTestApp(t, "[window]\nwidth=800\n\n")

	cmd := newExportCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"--format", "json"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var result map[string]map[string]string
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}
	if result["window"]["width"] != "800" {
		t.Errorf("unexpected export: %v", result)
	}
}

func TestExportCmd_InvalidFormat(t *testing.T) {
	app, _ := setupTestApp(t, "")

	cmd := newExportCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"--format", "xml"})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for unknown format")
	}
}

func writeImportFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing import file: %v", err)
	}
	return path
}

func TestImportCmd_Merges(t *testing.T) {
	app, out := setupTestApp(t, "[window]\nwidth=800\nheight=600\n\n")
	src := writeImportFile(t, "defaults.yaml", "window:\n  width: 1024\nuser:\n  name: bob\n")

	cmd := newImportCmd(NewTestProvider(app))
	cmd.SetArgs([]string{src})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if !strings.Contains(out.String(), "Imported 2 settings (3 total)") {
		t.Errorf("unexpected output: %q", out.String())
	}
	want := "[user]\nname=bob\n\n[window]\nheight=600\nwidth=1024\n\n"
	if got := readFile(t, app.Store.Path()); got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestImportCmd_Replace(t *testing.T) {
	app, _ := setupTestApp(t, "[window]\nwidth=800\nheight=600\n\n")
	src := writeImportFile(t, "backup.json", `{"user": {"name": "bob"}}`)

	cmd := newImportCmd(NewTestProvider(app))
	cmd.SetArgs([]string{src, "--replace"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if got, want := readFile(t, app.Store.Path()), "[user]\nname=bob\n\n"; got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestImportCmd_FormatFlagOverridesExtension(t *testing.T) {
	app, _ := setupTestApp(t, "")
	src := writeImportFile(t, "settings.txt", `{"a": {"k": "v"}}`)

	cmd := newImportCmd(NewTestProvider(app))
	cmd.SetArgs([]string{src, "--format", "json"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	s, ok := app.Store.Get("a", "k")
	if !ok || s.String() != "v" {
		t.Errorf("a.k = %q (set %v), want v", s.String(), ok)
	}
}

func TestImportCmd_UnknownExtension(t *testing.T) {
	app, _ := setupTestApp(t, "")
	src := writeImportFile(t, "settings.txt", "a:\n  k: v\n")

	cmd := newImportCmd(NewTestProvider(app))
	cmd.SetArgs([]string{src})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for unrecognized extension")
	}
}

func TestImportCmd_MissingFile(t *testing.T) {
	app, _ := setupTestApp(t, "")

	cmd := newImportCmd(NewTestProvider(app))
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.yaml")})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for missing import file")
	}
}

func TestWatchCmd_StopsOnCancel(t *testing.T) {
	app, out := setupTestApp(t, "[a]\nx=1\n\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := newWatchCmd(NewTestProvider(app))
	cmd.SetArgs([]string{})
	if err := cmd.ExecuteContext(ctx); err != nil {
		t.Fatalf("watch failed: %v", err)
	}

	if !strings.Contains(out.String(), "(1 settings)") {
		t.Errorf("unexpected output: %q", out.String())
	}
}
