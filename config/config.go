// Package config defines the duel service configuration and its loading.
//
// Configuration is layered: struct defaults, then an optional YAML file
// named by SHOWDOWN_CONFIG, then SHOWDOWN_-prefixed environment variables.
package config

// Config contains process configuration for the duel service.
type Config struct {
	// Addr configures the HTTP listen address, e.g. ":7777".
	Addr string `koanf:"addr"`

	// LogMode selects the logger profile: "dev" or "release".
	LogMode string `koanf:"log_mode"`

	// HistorySize bounds the in-memory duel history.
	HistorySize int `koanf:"history_size"`

	// ReadTimeoutMS and WriteTimeoutMS configure the HTTP server timeouts.
	ReadTimeoutMS  int `koanf:"read_timeout_ms"`
	WriteTimeoutMS int `koanf:"write_timeout_ms"`

	// ShutdownGraceMS bounds how long a graceful shutdown may take.
	ShutdownGraceMS int `koanf:"shutdown_grace_ms"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		Addr:            ":7777",
		LogMode:         "dev",
		HistorySize:     256,
		ReadTimeoutMS:   5_000,
		WriteTimeoutMS:  10_000,
		ShutdownGraceMS: 5_000,
	}
}
