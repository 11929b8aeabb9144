package widgets

import (
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"
)

const (
	mprisPrefix     = "org.mpris.MediaPlayer2."
	mprisPath       = "/org/mpris/MediaPlayer2"
	mprisPlayerIfc  = "org.mpris.MediaPlayer2.Player"
	dbusListNames   = "org.freedesktop.DBus.ListNames"
	playbackPlaying = "Playing"
)

// MprisState is the now-playing sample. Active is false when no player is
// on the bus or none is playing.
type MprisState struct {
	Active bool
	Title  string
	Artist string
}

// Mpris reads the first playing MPRIS player on the session bus.
type Mpris struct {
	conn *dbus.Conn
}

// NewMpris connects to the session bus.
func NewMpris() (*Mpris, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}
	return &Mpris{conn: conn}, nil
}

// Close releases the bus connection.
func (m *Mpris) Close() error {
	return m.conn.Close()
}

// Poll scans bus names for MPRIS players and returns the first one that is
// playing, falling back to the first player found in any state.
func (m *Mpris) Poll() (MprisState, error) {
	var names []string
	if err := m.conn.BusObject().Call(dbusListNames, 0).Store(&names); err != nil {
		return MprisState{}, err
	}

	var fallback MprisState
	for _, name := range names {
		if !strings.HasPrefix(name, mprisPrefix) {
			continue
		}
		state, err := m.playerState(name)
		if err != nil {
			continue
		}
		if state.Active {
			return state, nil
		}
		if fallback.Title == "" {
			fallback = state
		}
	}
	return fallback, nil
}

func (m *Mpris) playerState(name string) (MprisState, error) {
	obj := m.conn.Object(name, mprisPath)

	status, err := obj.GetProperty(mprisPlayerIfc + ".PlaybackStatus")
	if err != nil {
		return MprisState{}, err
	}
	var playback string
	status.Store(&playback)

	meta, err := obj.GetProperty(mprisPlayerIfc + ".Metadata")
	if err != nil {
		return MprisState{}, err
	}
	var metadata map[string]dbus.Variant
	if err := meta.Store(&metadata); err != nil {
		return MprisState{}, err
	}

	state := MprisState{Active: playback == playbackPlaying}
	if v, ok := metadata["xesam:title"]; ok {
		v.Store(&state.Title)
	}
	if v, ok := metadata["xesam:artist"]; ok {
		var artists []string
		if err := v.Store(&artists); err == nil && len(artists) > 0 {
			state.Artist = artists[0]
		}
	}
	return state, nil
}

// Label renders the now-playing text, empty when nothing to show.
func (s MprisState) Label() string {
	if s.Title == "" {
		return ""
	}
	text := s.Title
	if s.Artist != "" {
		text = s.Artist + " - " + text
	}
	return TruncateEnd(text, 40)
}
