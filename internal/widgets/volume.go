package widgets

import (
	"context"
	"strconv"
	"strings"

	"github.com/jbshell/jbshell/internal/command"
)

// VolumeState is the default sink's level.
type VolumeState struct {
	// Percent in 0..n; PipeWire allows boosting past 100.
	Percent int
	Muted   bool
}

// Volume polls `wpctl get-volume @DEFAULT_AUDIO_SINK@`.
type Volume struct {
	exec command.Executor
}

// NewVolume builds the volume widget.
func NewVolume(exec command.Executor) *Volume {
	return &Volume{exec: exec}
}

// Poll samples the default sink.
func (v *Volume) Poll(ctx context.Context) (VolumeState, error) {
	out, err := command.Output(ctx, v.exec, "wpctl", "get-volume", "@DEFAULT_AUDIO_SINK@")
	if err != nil {
		return VolumeState{}, err
	}
	return ParseWpctlVolume(out), nil
}

// ParseWpctlVolume parses wpctl's "Volume: 0.65 [MUTED]" line. Unparseable
// output yields a zero level.
func ParseWpctlVolume(out string) VolumeState {
	state := VolumeState{Muted: strings.Contains(out, "[MUTED]")}
	fields := strings.Fields(out)
	if len(fields) >= 2 {
		if level, err := strconv.ParseFloat(fields[1], 64); err == nil {
			state.Percent = int(level*100 + 0.5)
		}
	}
	return state
}

// VolumeGlyph picks the speaker icon for a sample.
func VolumeGlyph(s VolumeState) string {
	switch {
	case s.Muted:
		return "󰝟"
	case s.Percent < 33:
		return "󰕿"
	case s.Percent < 66:
		return "󰖀"
	default:
		return "󰕾"
	}
}
