// ABOUTME: Standard filesystem paths for anchor configuration
// ABOUTME: Resolves ~/.anchor/ and the default config.yaml inside it

package config

import (
	"os"
	"path/filepath"
)

const globalDirName = ".anchor"

// GlobalDir returns the user-global config directory (~/.anchor/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ConfigFile returns the default settings file path.
func ConfigFile() string {
	return filepath.Join(GlobalDir(), "config.yaml")
}

// LogFile returns where the demo writes logs while it owns the screen.
func LogFile() string {
	return filepath.Join(GlobalDir(), "anchor.log")
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}
