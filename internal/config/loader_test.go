package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points HOME at an empty directory so a developer's own config
// does not leak into the test.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "ui:\n  history_limit: 3\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.UI.HistoryLimit != 3 {
		t.Errorf("HistoryLimit = %d, expected 3", cfg.UI.HistoryLimit)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, expected debug", cfg.Log.Level)
	}
	// Keys missing from the file keep their defaults.
	if cfg.SSH.Address != ":23235" || !cfg.UI.ShowActual {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with a missing custom file should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("ui: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() with malformed YAML should fail")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := isolate(t)

	dir := filepath.Join(home, ".brokencalc")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := "storage:\n  db_path: /tmp/user.db\nssh:\n  idle_timeout: 5m\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Storage.DBPath != "/tmp/user.db" {
		t.Errorf("DBPath = %q, expected /tmp/user.db", cfg.Storage.DBPath)
	}
	if cfg.SSH.IdleTimeout != 5*time.Minute {
		t.Errorf("IdleTimeout = %v, expected 5m", cfg.SSH.IdleTimeout)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)

	t.Setenv("BROKENCALC_DB", "/data/calc.db")
	t.Setenv("BROKENCALC_LOG_LEVEL", "warn")
	t.Setenv("BROKENCALC_SSH_ADDR", ":2222")
	t.Setenv("BROKENCALC_SHOW_ACTUAL", "false")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	tests := []struct {
		name     string
		got      any
		expected any
	}{
		{"db path", cfg.Storage.DBPath, "/data/calc.db"},
		{"log level", cfg.Log.Level, "warn"},
		{"ssh address", cfg.SSH.Address, ":2222"},
		{"show actual", cfg.UI.ShowActual, false},
		{"untouched", cfg.UI.HistoryLimit, 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.expected {
				t.Errorf("got %v, expected %v", tc.got, tc.expected)
			}
		})
	}
}

func TestLoadBadEnv(t *testing.T) {
	isolate(t)
	t.Setenv("BROKENCALC_HISTORY_LIMIT", "lots")

	if _, err := Load(""); err == nil {
		t.Error("Load() should fail on a non-numeric history limit")
	}
}
