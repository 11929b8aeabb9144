package config

import (
	"github.com/jbshell/jbshell/internal/models"
)

// LoadSettings loads the bar settings from ~/.config/jbshell/config.yaml.
// If the file doesn't exist, returns default settings. Loaded values are
// normalized so broken intervals never reach the poll loops.
func LoadSettings() (*models.Settings, error) {
	path, err := SettingsFile()
	if err != nil {
		return nil, err
	}
	settings, err := LoadYAMLOrDefault(path, models.NewSettings)
	if err != nil {
		return nil, err
	}
	settings.Normalize()
	return settings, nil
}

// SaveSettings saves the bar settings to ~/.config/jbshell/config.yaml.
func SaveSettings(settings *models.Settings) error {
	path, err := SettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}

// LoadTheme loads the theme from ~/.config/jbshell/theme.yaml, falling back
// to the built-in defaults when the file is absent.
func LoadTheme() (*models.Theme, error) {
	path, err := ThemeFile()
	if err != nil {
		return nil, err
	}
	return LoadYAMLOrDefault(path, models.NewTheme)
}
