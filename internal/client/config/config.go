// Package config assembles runtime settings for the recipe client from
// layered sources: defaults, then environment (with optional .env file),
// then a JSON config file, then command-line flags. Later layers win.
package config

import "time"

// Config holds runtime settings for the recipe client.
type Config struct {
	// ServerBaseURL is the recipe backend's base URL.
	ServerBaseURL string
	// RequestTimeout bounds each HTTP request.
	RequestTimeout time.Duration
	// HealthCheckInterval is how often the background watcher probes /health.
	HealthCheckInterval time.Duration
	// StateFile is where the auth session (token + user) is persisted.
	StateFile string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:5000"
	c.RequestTimeout = 10 * time.Second
	c.HealthCheckInterval = 30 * time.Second
	c.StateFile = "recipefinder_state.json"
}

// LoadConfig constructs a Config, applies defaults, then overlays environment
// values, JSON (if a config file was given) and command-line flags, in that
// order of increasing precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
