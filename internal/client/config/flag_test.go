package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	// Test cases
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd", "-a", "https://auth.example.com", "-d", "state.db", "-t", "10", "-l", "debug"}, expectPanic: false,
			expected: &Config{AuthEndpointAddr: "https://auth.example.com", DatabaseDSN: "state.db", AuthRequestTimeout: 10 * time.Second, LogLevel: "debug"}},
		{name: "Test2 incorrect timeout", args: []string{"cmd", "-a", "https://auth.example.com", "-t", "abc"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {

				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
