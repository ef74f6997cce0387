package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names. Intervals are seconds.
const (
	envServerBaseURL       = "RECIPE_SERVER_ADDR"
	envRequestTimeout      = "RECIPE_REQUEST_TIMEOUT"
	envHealthCheckInterval = "RECIPE_HEALTH_INTERVAL"
	envStateFile           = "RECIPE_STATE_FILE"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first when present; already-set
// variables keep their values.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envServerBaseURL); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv(envStateFile); v != "" {
		cfg.StateFile = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		if sec, err := strconv.Atoi(v); err == nil && sec > 0 {
			cfg.RequestTimeout = time.Duration(sec) * time.Second
		}
	}
	if v := os.Getenv(envHealthCheckInterval); v != "" {
		if sec, err := strconv.Atoi(v); err == nil && sec > 0 {
			cfg.HealthCheckInterval = time.Duration(sec) * time.Second
		}
	}
}
