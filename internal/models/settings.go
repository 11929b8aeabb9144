// Package models defines the data types shared across jbshell.
package models

// IntervalsConfig holds per-widget poll intervals, in seconds.
type IntervalsConfig struct {
	Clock   int `yaml:"clock"`
	Volume  int `yaml:"volume"`
	Network int `yaml:"network"`
	Battery int `yaml:"battery"`
	Kube    int `yaml:"kube"`
	Mpris   int `yaml:"mpris"`
}

// WidgetsConfig toggles optional bar segments.
type WidgetsConfig struct {
	Kube    bool `yaml:"kube"`
	Mpris   bool `yaml:"mpris"`
	Battery bool `yaml:"battery"`
	Network bool `yaml:"network"`
	Volume  bool `yaml:"volume"`
}

// ClockConfig holds the clock layouts in Go time format syntax. Empty
// strings use the built-in defaults.
type ClockConfig struct {
	DateFormat string `yaml:"date_format"`
	TimeFormat string `yaml:"time_format"`
}

// Settings represents the bar configuration.
// This corresponds to ~/.config/jbshell/config.yaml.
type Settings struct {
	Version int `yaml:"version"`

	// EmptyScroll makes next/previous walk sequential workspace numbers
	// (creating empty ones) instead of cycling occupied workspaces.
	EmptyScroll bool `yaml:"empty_scroll"`

	// NetworkInterface is the iwd station name, e.g. "wlan0".
	NetworkInterface string `yaml:"network_interface"`

	Clock     ClockConfig     `yaml:"clock"`
	Intervals IntervalsConfig `yaml:"intervals"`
	Widgets   WidgetsConfig   `yaml:"widgets"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:          1,
		EmptyScroll:      false,
		NetworkInterface: "wlan0",
		Intervals: IntervalsConfig{
			Clock:   1,
			Volume:  1,
			Network: 5,
			Battery: 30,
			Kube:    5,
			Mpris:   2,
		},
		Widgets: WidgetsConfig{
			Kube:    true,
			Mpris:   false,
			Battery: true,
			Network: true,
			Volume:  true,
		},
	}
}

// Normalize clamps nonsensical values to usable ones so a hand-edited
// config cannot spin the poll loops.
func (s *Settings) Normalize() {
	clamp := func(v *int, def int) {
		if *v < 1 {
			*v = def
		}
	}
	defaults := NewSettings()
	clamp(&s.Intervals.Clock, defaults.Intervals.Clock)
	clamp(&s.Intervals.Volume, defaults.Intervals.Volume)
	clamp(&s.Intervals.Network, defaults.Intervals.Network)
	clamp(&s.Intervals.Battery, defaults.Intervals.Battery)
	clamp(&s.Intervals.Kube, defaults.Intervals.Kube)
	clamp(&s.Intervals.Mpris, defaults.Intervals.Mpris)
	if s.NetworkInterface == "" {
		s.NetworkInterface = defaults.NetworkInterface
	}
}
