package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/brokencalc.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration, used when the embedded
// YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			DBPath: "~/.brokencalc/progress.db",
		},
		UI: UIConfig{
			ShowActual:   true,
			HistoryLimit: 8,
			Theme:        "default",
		},
		SSH: SSHConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
