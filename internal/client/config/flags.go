package config

import (
	"flag"
	"os"
	"time"

	"recipefinder/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the recipe backend
//	-t int      request timeout in seconds
//	-i int      health check interval in seconds
//	-s string   path of the auth state file
//
// os.Args is pre-filtered to just these flags so the -c/-config flags of the
// JSON stage do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-i", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the recipe backend")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	interval := fs.Int("i", int(cfg.HealthCheckInterval.Seconds()), "health check interval (in seconds)")
	fs.StringVar(&cfg.StateFile, "s", cfg.StateFile, "path of the auth state file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	cfg.HealthCheckInterval = time.Duration(*interval) * time.Second
}
