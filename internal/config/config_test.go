package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded defaults: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("defaults/bingo.yaml drifted from Default() (-want +got):\n%s", diff)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("generation:\n  win_at: 15\noutput:\n  format: pdf\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Generation.WinAt != 15 {
		t.Errorf("WinAt = %d, want 15", cfg.Generation.WinAt)
	}
	if cfg.Output.Format != "pdf" {
		t.Errorf("Format = %q, want pdf", cfg.Output.Format)
	}
	// Unset keys keep their defaults.
	if cfg.Generation.MaxAttempts != 100 {
		t.Errorf("MaxAttempts = %d, want 100", cfg.Generation.MaxAttempts)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("generation: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BINGO_WIN_AT", "18")
	t.Setenv("BINGO_OUTPUT_SPLIT", "true")
	t.Setenv("BINGO_CHROME_BIN", "/usr/bin/chromium")
	t.Setenv("BINGO_LOG_LEVEL", "debug")

	cfg := Default()
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}

	if cfg.Generation.WinAt != 18 {
		t.Errorf("WinAt = %d, want 18", cfg.Generation.WinAt)
	}
	if !cfg.Output.Split {
		t.Error("Split = false, want true")
	}
	if cfg.Render.ChromeBin != "/usr/bin/chromium" {
		t.Errorf("ChromeBin = %q", cfg.Render.ChromeBin)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level = %q", cfg.Log.Level)
	}
	if cfg.Generation.Cards != 10 {
		t.Errorf("Cards = %d, want untouched default 10", cfg.Generation.Cards)
	}
}

func TestEnvOverrideInvalid(t *testing.T) {
	t.Setenv("BINGO_CARDS", "many")
	cfg := Default()
	if err := ApplyEnv(&cfg); err == nil {
		t.Error("expected error for non-numeric BINGO_CARDS")
	}
}

func TestValidFormat(t *testing.T) {
	for _, f := range []string{"html", "pdf", "text"} {
		if !ValidFormat(f) {
			t.Errorf("ValidFormat(%q) = false", f)
		}
	}
	if ValidFormat("docx") {
		t.Error("ValidFormat(docx) = true")
	}
}
