package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the edutube CLI.
//
// Fields:
//   - ServerURL: base URL of the edutube HTTP API.
//   - RequestTimeout: per-call timeout for API requests. Direct uploads to
//     object storage are not bound by it.
//   - OnlineCheckInterval: how often the CLI probes /health for its prompt.
type Config struct {
	ServerURL           string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:3001"
	c.RequestTimeout = 30 * time.Second
	c.OnlineCheckInterval = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}
