package widgets

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	upowerBus        = "org.freedesktop.UPower"
	upowerDevicePath = "/org/freedesktop/UPower/devices/DisplayDevice"
	upowerDeviceIfc  = "org.freedesktop.UPower.Device"
)

// UPower battery states (subset; see org.freedesktop.UPower.Device).
const (
	upowerStateCharging     uint32 = 1
	upowerStateFullyCharged uint32 = 4
)

// BatteryState is one sample of the display device.
type BatteryState struct {
	// Present is false on desktop machines without a battery; the bar
	// hides the segment entirely.
	Present    bool
	Percentage int
	Charging   bool
}

// Battery reads the UPower display device over the system bus. The display
// device aggregates all physical batteries, which is what a bar wants.
type Battery struct {
	conn *dbus.Conn
	obj  dbus.BusObject
}

// NewBattery connects to the system bus. The returned widget is usable even
// when UPower is absent; Poll then reports Present=false.
func NewBattery() (*Battery, error) {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to system bus: %w", err)
	}
	return &Battery{
		conn: conn,
		obj:  conn.Object(upowerBus, upowerDevicePath),
	}, nil
}

// Close releases the bus connection.
func (b *Battery) Close() error {
	return b.conn.Close()
}

// Poll samples the display device.
func (b *Battery) Poll() (BatteryState, error) {
	present, err := b.boolProp("IsPresent")
	if err != nil {
		return BatteryState{}, err
	}
	if !present {
		return BatteryState{Present: false}, nil
	}

	var pct float64
	if v, err := b.obj.GetProperty(upowerDeviceIfc + ".Percentage"); err == nil {
		v.Store(&pct)
	} else {
		return BatteryState{}, err
	}

	var state uint32
	if v, err := b.obj.GetProperty(upowerDeviceIfc + ".State"); err == nil {
		v.Store(&state)
	} else {
		return BatteryState{}, err
	}

	return BatteryState{
		Present:    true,
		Percentage: int(pct + 0.5),
		Charging:   state == upowerStateCharging || state == upowerStateFullyCharged,
	}, nil
}

func (b *Battery) boolProp(name string) (bool, error) {
	v, err := b.obj.GetProperty(upowerDeviceIfc + "." + name)
	if err != nil {
		return false, err
	}
	var out bool
	if err := v.Store(&out); err != nil {
		return false, err
	}
	return out, nil
}

// BatteryGlyph picks the segment icon for a sample, using the same charge
// buckets as the desktop battery icon names.
func BatteryGlyph(s BatteryState) string {
	switch {
	case s.Charging:
		return "󰂄"
	case s.Percentage <= 10:
		return "󰁺"
	case s.Percentage <= 30:
		return "󰁼"
	case s.Percentage <= 60:
		return "󰁾"
	case s.Percentage <= 90:
		return "󰂀"
	default:
		return "󰁹"
	}
}
