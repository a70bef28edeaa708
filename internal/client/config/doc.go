// Package config loads runtime configuration for the econdash client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables with the ECONDASH_ prefix (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the authentication backend
//	-w string   base URL of the World Bank data API
//	-d string   path of the local SQLite session store
//	-t int      auth request timeout (seconds)
//	-f string   log file path
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for timeouts, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "auth_endpoint_addr": "https://auth.example.com",
//	  "data_endpoint_addr": "https://api.worldbank.org/v2",
//	  "database_dsn": "econdash.db",
//	  "auth_request_timeout": "15s",
//	  "log_file": "econdash.log",
//	  "log_level": "debug"
//	}
//
// Primary API
//
//   - type Config                     — holds endpoint, storage and logging settings
//   - func LoadConfig() *Config       — builds Config by applying defaults, env, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
