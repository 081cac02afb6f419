package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadValid(t *testing.T) {
	path := writeTemp(t, `
server:
  host: 127.0.0.1
  port: 8420
storage:
  path: /tmp/ironlog.db
generator:
  squat_days: 5
  hinge_days: 5
  press_days: 5
  seed: 42
analytics:
  improving_threshold: 10
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8420 {
		t.Errorf("port = %d, want 8420", cfg.Server.Port)
	}
	if *cfg.Generator.SquatDays != 5 || cfg.Generator.Seed != 42 {
		t.Errorf("generator = %+v", cfg.Generator)
	}
	if cfg.Analytics.ImprovingThreshold != 10 {
		t.Errorf("improving_threshold = %v, want 10", cfg.Analytics.ImprovingThreshold)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeTemp(t, `
server:
  port: 8420
storage:
  path: /tmp/ironlog.db
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *cfg.Generator.SquatDays != 10 || *cfg.Generator.HingeDays != 15 || *cfg.Generator.PressDays != 15 {
		t.Errorf("generator defaults = %+v, want 10/15/15", cfg.Generator)
	}
	if cfg.Analytics.OverloadStep != 2.5 {
		t.Errorf("overload_step default = %v, want 2.5", cfg.Analytics.OverloadStep)
	}
	if cfg.Analytics.RPEFloor != 6 || cfg.Analytics.RPECeil != 9 {
		t.Errorf("rpe band defaults = %d..%d, want 6..9", cfg.Analytics.RPEFloor, cfg.Analytics.RPECeil)
	}
	if cfg.Generator.Seed != 0 {
		t.Errorf("seed default = %d, want 0 (fresh per start)", cfg.Generator.Seed)
	}
}

// TestLoadExplicitZeroDays verifies an explicit zero day count is kept, not
// rewritten to the default.
func TestLoadExplicitZeroDays(t *testing.T) {
	path := writeTemp(t, `
server:
  port: 8420
storage:
  path: /tmp/ironlog.db
generator:
  squat_days: 0
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *cfg.Generator.SquatDays != 0 {
		t.Errorf("squat_days = %d, want explicit 0", *cfg.Generator.SquatDays)
	}
	if *cfg.Generator.HingeDays != 15 {
		t.Errorf("hinge_days = %d, want default 15", *cfg.Generator.HingeDays)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("IRONLOG_SERVER_HOST", "0.0.0.0")
	t.Setenv("IRONLOG_SERVER_PORT", "9000")
	t.Setenv("IRONLOG_STORAGE_PATH", "/data/override.db")
	t.Setenv("IRONLOG_GENERATOR_SEED", "7")

	path := writeTemp(t, `
server:
  host: 127.0.0.1
  port: 8420
storage:
  path: /tmp/ironlog.db
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 9000 {
		t.Errorf("server = %+v, want env override", cfg.Server)
	}
	if cfg.Storage.Path != "/data/override.db" {
		t.Errorf("storage.path = %q, want env override", cfg.Storage.Path)
	}
	if cfg.Generator.Seed != 7 {
		t.Errorf("seed = %d, want 7", cfg.Generator.Seed)
	}
}

func TestLoadValidation(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"missing port", "storage:\n  path: /tmp/x.db\n"},
		{"missing storage path", "server:\n  port: 8420\n"},
		{"negative day count", "server:\n  port: 8420\nstorage:\n  path: /tmp/x.db\ngenerator:\n  squat_days: -1\n"},
		{"inverted rpe band", "server:\n  port: 8420\nstorage:\n  path: /tmp/x.db\nanalytics:\n  rpe_floor: 9\n  rpe_ceil: 7\n"},
	}
	for _, tc := range cases {
		path := writeTemp(t, tc.content)
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeTemp(t, "server: [not a map")
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
