// Package filex contains small filesystem helpers for locating the client's
// local state.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureDataDir creates (if needed) and returns the directory holding the
// application's local state: <user config dir>/<appName>, falling back to
// the working directory when the platform config dir cannot be resolved.
func EnsureDataDir(appName string) (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		base, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
	}

	dir := filepath.Join(base, appName)

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// Resolve joins name onto dir unless name is already an absolute path or a
// DSN-style reference (contains ':'), which is passed through unchanged.
func Resolve(dir, name string) string {
	if filepath.IsAbs(name) || strings.Contains(name, ":") {
		return name
	}
	return filepath.Join(dir, name)
}
