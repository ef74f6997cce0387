package config

import (
	"encoding/json"
	"os"
	"time"

	"recipefinder/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Intervals are
// whole seconds in the file; only fields present there are overlaid.
type jsonConfig struct {
	ServerBaseURL          string `json:"server_base_url"`
	RequestTimeoutSec      int    `json:"request_timeout_sec"`
	HealthCheckIntervalSec int    `json:"health_check_interval_sec"`
	StateFile              string `json:"state_file"`
}

// parseJSON overlays Config with values from the JSON file named by the
// -c/-config flags. No flag, no file, nothing happens. An unreadable or
// malformed file panics: a config file that was asked for but cannot be
// honored should stop startup.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}
	applyJSON(cfg, &jc)
}

func applyJSON(cfg *Config, jc *jsonConfig) {
	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeoutSec > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSec) * time.Second
	}
	if jc.HealthCheckIntervalSec > 0 {
		cfg.HealthCheckInterval = time.Duration(jc.HealthCheckIntervalSec) * time.Second
	}
	if jc.StateFile != "" {
		cfg.StateFile = jc.StateFile
	}
}
