package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "https://deepqai-assignment.onrender.com", c.AuthEndpointAddr)
	assert.Equal(t, "https://api.worldbank.org/v2", c.DataEndpointAddr)
	assert.Equal(t, "econdash.db", c.DatabaseDSN)
	assert.Equal(t, 15*time.Second, c.AuthRequestTimeout)
	assert.Equal(t, "econdash.log", c.LogFile)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "https://deepqai-assignment.onrender.com", cfg.AuthEndpointAddr)
	assert.Equal(t, "https://api.worldbank.org/v2", cfg.DataEndpointAddr)
	assert.Equal(t, 15*time.Second, cfg.AuthRequestTimeout)
}
