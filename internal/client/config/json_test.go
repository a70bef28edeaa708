package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"auth_endpoint_addr":   "https://auth.example.com",
		"auth_request_timeout": "10s",
		"log_level":            "debug",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "https://auth.example.com", cfg.AuthEndpointAddr)
		assert.Equal(t, 10*time.Second, cfg.AuthRequestTimeout)
		assert.Equal(t, "debug", cfg.LogLevel)
		// fields absent from the file keep their earlier values
		assert.Equal(t, "https://api.worldbank.org/v2", cfg.DataEndpointAddr)
		assert.Equal(t, "econdash.db", cfg.DatabaseDSN)
	})

	t.Run("no CONFIG and no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			AuthEndpointAddr:   "defaults:1234",
			AuthRequestTimeout: 42 * time.Second,
		}
		parseJson(cfg)

		assert.Equal(t, "defaults:1234", cfg.AuthEndpointAddr)
		assert.Equal(t, 42*time.Second, cfg.AuthRequestTimeout)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
