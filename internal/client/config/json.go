package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/econdash/internal/flagx"
	"github.com/dmitrijs2005/econdash/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify timeouts either as
// strings like "15s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	AuthEndpointAddr   string         `json:"auth_endpoint_addr"`
	DataEndpointAddr   string         `json:"data_endpoint_addr"`
	DatabaseDSN        string         `json:"database_dsn"`
	AuthRequestTimeout timex.Duration `json:"auth_request_timeout"`
	LogFile            string         `json:"log_file"`
	LogLevel           string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JSONConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies set fields into the provided Config.
//   - Panics on read or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseEnv -> parseJson -> parseFlags, where
// later stages override earlier ones.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.AuthEndpointAddr != "" {
		cfg.AuthEndpointAddr = jc.AuthEndpointAddr
	}
	if jc.DataEndpointAddr != "" {
		cfg.DataEndpointAddr = jc.DataEndpointAddr
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.AuthRequestTimeout.Duration != 0 {
		cfg.AuthRequestTimeout = time.Duration(jc.AuthRequestTimeout.Duration)
	}
	if jc.LogFile != "" {
		cfg.LogFile = jc.LogFile
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
