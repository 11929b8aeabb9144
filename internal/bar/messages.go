package bar

import (
	"time"

	"github.com/jbshell/jbshell/internal/hypr"
	"github.com/jbshell/jbshell/internal/models"
	"github.com/jbshell/jbshell/internal/widgets"
)

// HyprEventMsg carries one compositor event from the stream goroutine.
type HyprEventMsg struct {
	Event hypr.Event
}

// StreamClosedMsg signals the event socket went away.
type StreamClosedMsg struct{}

// ReadyMsg reports one readiness probe of the request socket.
type ReadyMsg struct {
	Ready bool
}

// ClockTickMsg fires once per clock interval.
type ClockTickMsg struct {
	Now time.Time
}

// BatteryMsg carries a battery sample; OK is false when the poll failed and
// the previous state should be kept.
type BatteryMsg struct {
	State widgets.BatteryState
	OK    bool
}

// NetworkMsg carries a wireless sample.
type NetworkMsg struct {
	State widgets.NetworkState
	OK    bool
}

// VolumeMsg carries a sink sample.
type VolumeMsg struct {
	State widgets.VolumeState
	OK    bool
}

// KubeMsg carries a kubeconfig sample.
type KubeMsg struct {
	State widgets.KubeState
	OK    bool
}

// MprisMsg carries a now-playing sample.
type MprisMsg struct {
	State widgets.MprisState
	OK    bool
}

// ThemeReloadMsg carries a hot-reloaded theme.
type ThemeReloadMsg struct {
	Theme *models.Theme
}
