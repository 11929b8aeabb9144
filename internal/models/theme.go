package models

// Theme holds the bar's colors as terminal color strings (ANSI indexes or
// hex). It corresponds to ~/.config/jbshell/theme.yaml and is hot-reloaded
// while the bar runs.
type Theme struct {
	Version int `yaml:"version"`

	Foreground string `yaml:"foreground"`
	Dim        string `yaml:"dim"`
	Accent     string `yaml:"accent"`
	Urgent     string `yaml:"urgent"`
	BarBg      string `yaml:"bar_bg"`

	// Workspace button colors.
	WorkspaceActiveFg string `yaml:"workspace_active_fg"`
	WorkspaceActiveBg string `yaml:"workspace_active_bg"`
	WorkspaceEmptyFg  string `yaml:"workspace_empty_fg"`
}

// NewTheme creates the default theme.
func NewTheme() *Theme {
	return &Theme{
		Version:           1,
		Foreground:        "15",
		Dim:               "240",
		Accent:            "45",
		Urgent:            "196",
		BarBg:             "236",
		WorkspaceActiveFg: "0",
		WorkspaceActiveBg: "45",
		WorkspaceEmptyFg:  "244",
	}
}
