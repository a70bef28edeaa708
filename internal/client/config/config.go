package config

import "time"

// Config holds runtime settings for the econdash client.
//
// Fields:
//   - AuthEndpointAddr: base URL of the authentication REST backend.
//   - DataEndpointAddr: base URL of the World Bank open data API.
//   - DatabaseDSN: path or DSN of the local SQLite session store.
//   - AuthRequestTimeout: per-request timeout for auth backend calls.
//   - LogFile: path of the log file (the TUI owns the terminal, so logs
//     never go to stdout).
//   - LogLevel: minimum level emitted ("debug", "info", "warn", "error").
type Config struct {
	AuthEndpointAddr   string
	DataEndpointAddr   string
	DatabaseDSN        string
	AuthRequestTimeout time.Duration
	LogFile            string
	LogLevel           string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.AuthEndpointAddr = "https://deepqai-assignment.onrender.com"
	c.DataEndpointAddr = "https://api.worldbank.org/v2"
	c.DatabaseDSN = "econdash.db"
	c.AuthRequestTimeout = 15 * time.Second
	c.LogFile = "econdash.log"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// environment variables, JSON (if present) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
