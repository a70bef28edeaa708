package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/econdash/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the authentication backend (default from Config)
//	-w string   base URL of the World Bank data API (default from Config)
//	-d string   path of the local SQLite session store (default from Config)
//	-t int      auth request timeout in seconds (default from Config)
//	-f string   log file path (default from Config)
//	-l string   log level (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-w", "-d", "-t", "-f", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.AuthEndpointAddr, "a", cfg.AuthEndpointAddr, "base URL of the authentication backend")
	fs.StringVar(&cfg.DataEndpointAddr, "w", cfg.DataEndpointAddr, "base URL of the World Bank data API")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the local session store")
	authRequestTimeout := fs.Int("t", int(cfg.AuthRequestTimeout.Seconds()), "auth request timeout (in seconds)")
	fs.StringVar(&cfg.LogFile, "f", cfg.LogFile, "log file path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.AuthRequestTimeout = time.Duration(*authRequestTimeout) * time.Second
}
