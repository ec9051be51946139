package consts

import (
	"os"
	"path/filepath"
)

// Constants for configuration paths and defaults
const (
	DefaultConfigName = "hearth.yaml"
	FilesDirName      = "files"
	EnvFileName       = ".env"
	AppDirName        = "hearth"
)

// DefaultConfigDir returns the per-user configuration directory where
// `hearth init` scaffolds a new setup (~/.config/hearth on Linux).
func DefaultConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppDirName), nil
}

// DefaultConfigPath returns the config file inside DefaultConfigDir.
func DefaultConfigPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultConfigName), nil
}
