package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig is a DTO used exclusively for environment variable parsing.
// All fields are strings so that unset variables can be told apart from
// explicit zero values; durations are parsed with time.ParseDuration.
type EnvConfig struct {
	AuthEndpointAddr   string `envconfig:"AUTH_ENDPOINT_ADDR"`
	DataEndpointAddr   string `envconfig:"DATA_ENDPOINT_ADDR"`
	DatabaseDSN        string `envconfig:"DATABASE_DSN"`
	AuthRequestTimeout string `envconfig:"AUTH_REQUEST_TIMEOUT"`
	LogFile            string `envconfig:"LOG_FILE"`
	LogLevel           string `envconfig:"LOG_LEVEL"`
}

// parseEnv overlays Config with values from ECONDASH_-prefixed environment
// variables. Only variables that are actually set override earlier values.
// Panics on unparsable values (caller should recover if desired).
func parseEnv(cfg *Config) {
	var ec EnvConfig
	if err := envconfig.Process("econdash", &ec); err != nil {
		panic(err)
	}

	if ec.AuthEndpointAddr != "" {
		cfg.AuthEndpointAddr = ec.AuthEndpointAddr
	}
	if ec.DataEndpointAddr != "" {
		cfg.DataEndpointAddr = ec.DataEndpointAddr
	}
	if ec.DatabaseDSN != "" {
		cfg.DatabaseDSN = ec.DatabaseDSN
	}
	if ec.AuthRequestTimeout != "" {
		d, err := time.ParseDuration(ec.AuthRequestTimeout)
		if err != nil {
			panic(err)
		}
		cfg.AuthRequestTimeout = d
	}
	if ec.LogFile != "" {
		cfg.LogFile = ec.LogFile
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
}
