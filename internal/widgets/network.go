package widgets

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/jbshell/jbshell/internal/command"
)

// NetworkState describes the wireless station managed by iwd.
type NetworkState struct {
	Connected bool
	SSID      string
	// RSSI in dBm; -100 when unknown.
	RSSI int
}

var (
	stateRe = regexp.MustCompile(`State\s+(\S+)`)
	ssidRe  = regexp.MustCompile(`Connected network\s+([^\n]+)`)
	rssiRe  = regexp.MustCompile(`RSSI\s+(-?\d+)`)
)

// Network polls `iwctl station <iface> show`.
type Network struct {
	exec  command.Executor
	iface string
}

// NewNetwork builds the widget for one wireless interface.
func NewNetwork(exec command.Executor, iface string) *Network {
	if iface == "" {
		iface = "wlan0"
	}
	return &Network{exec: exec, iface: iface}
}

// Poll runs iwctl and parses its table output.
func (n *Network) Poll(ctx context.Context) (NetworkState, error) {
	out, err := command.Output(ctx, n.exec, "iwctl", "station", n.iface, "show")
	if err != nil {
		return NetworkState{}, err
	}
	return ParseStationShow(out), nil
}

// ParseStationShow extracts connection state, SSID and RSSI from iwctl's
// human-oriented output. Anything unparseable degrades to disconnected.
func ParseStationShow(out string) NetworkState {
	state := NetworkState{RSSI: -100}

	if m := stateRe.FindStringSubmatch(out); m != nil && m[1] == "connected" {
		state.Connected = true
	}
	if !state.Connected {
		return state
	}
	if m := ssidRe.FindStringSubmatch(out); m != nil {
		state.SSID = strings.TrimSpace(m[1])
	}
	if m := rssiRe.FindStringSubmatch(out); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			state.RSSI = v
		}
	}
	return state
}

// SignalGlyph maps RSSI to a four-bucket signal indicator.
func SignalGlyph(s NetworkState) string {
	if !s.Connected {
		return "󰤮"
	}
	switch {
	case s.RSSI >= -50:
		return "󰤨"
	case s.RSSI >= -60:
		return "󰤥"
	case s.RSSI >= -70:
		return "󰤢"
	default:
		return "󰤟"
	}
}
