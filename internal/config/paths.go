// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

// ConfigDirName is the jbshell directory under XDG_CONFIG_HOME.
const ConfigDirName = "jbshell"

// File names
const (
	SettingsFileName = "config.yaml"
	ThemeFileName    = "theme.yaml"
)

// Dir returns the jbshell configuration directory
// (~/.config/jbshell/ unless XDG_CONFIG_HOME overrides it).
func Dir() (string, error) {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, ConfigDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", ConfigDirName), nil
}

// SettingsFile returns the path to config.yaml.
func SettingsFile() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// ThemeFile returns the path to theme.yaml.
func ThemeFile() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ThemeFileName), nil
}
