// Package config provides YAML-based configuration loading for the broken
// calculator, with embedded defaults and environment overrides.
package config

import "time"

// Config contains all runtime configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	UI      UIConfig      `yaml:"ui"`
	SSH     SSHConfig     `yaml:"ssh"`
	Log     LogConfig     `yaml:"log"`
}

// StorageConfig defines where progress and the solve log are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path" env:"BROKENCALC_DB"`
}

// UIConfig defines presentation parameters for the terminal UI.
type UIConfig struct {
	ShowActual   bool   `yaml:"show_actual" env:"BROKENCALC_SHOW_ACTUAL"`     // show the true result next to the broken one
	HistoryLimit int    `yaml:"history_limit" env:"BROKENCALC_HISTORY_LIMIT"` // history rows rendered; 0 renders all
	StartLevel   int    `yaml:"start_level" env:"BROKENCALC_START_LEVEL"`
	Theme        string `yaml:"theme" env:"BROKENCALC_THEME"` // default or mono
}

// SSHConfig defines parameters for the SSH server.
type SSHConfig struct {
	Address     string        `yaml:"address" env:"BROKENCALC_SSH_ADDR"`
	HostKeyPath string        `yaml:"host_key_path" env:"BROKENCALC_SSH_HOST_KEY"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"BROKENCALC_SSH_IDLE_TIMEOUT"`
}

// LogConfig defines logging parameters.
type LogConfig struct {
	Level string `yaml:"level" env:"BROKENCALC_LOG_LEVEL"` // debug, info, warn, error
}
