package bar

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jbshell/jbshell/internal/hypr"
)

// pollTimeout bounds each exec-backed widget sample so a wedged helper
// binary cannot stall the poll cycle forever.
const pollTimeout = 5 * time.Second

// readinessInterval is how often the bar probes the request socket while
// waiting for the compositor to come up.
const readinessInterval = 500 * time.Millisecond

func after(seconds int) time.Duration {
	if seconds < 1 {
		seconds = 1
	}
	return time.Duration(seconds) * time.Second
}

func clockTickCmd(seconds int) tea.Cmd {
	return tea.Tick(after(seconds), func(t time.Time) tea.Msg {
		return ClockTickMsg{Now: t}
	})
}

// readinessCmd probes the request socket and reports the result. Update
// reschedules the probe until every row has completed its initial sync.
func readinessCmd(conn hypr.Commander) tea.Cmd {
	return tea.Tick(readinessInterval, func(time.Time) tea.Msg {
		return ReadyMsg{Ready: conn.Ready()}
	})
}

// The widget commands sample once after the given interval; each resulting
// message reschedules the next sample. An interval of 0 samples immediately,
// used for the first paint.

func batteryCmd(src batterySource, seconds int) tea.Cmd {
	return tea.Tick(pollDelay(seconds), func(time.Time) tea.Msg {
		state, err := src.Poll()
		return BatteryMsg{State: state, OK: err == nil}
	})
}

func networkCmd(src networkSource, seconds int) tea.Cmd {
	return tea.Tick(pollDelay(seconds), func(time.Time) tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), pollTimeout)
		defer cancel()
		state, err := src.Poll(ctx)
		return NetworkMsg{State: state, OK: err == nil}
	})
}

func volumeCmd(src volumeSource, seconds int) tea.Cmd {
	return tea.Tick(pollDelay(seconds), func(time.Time) tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), pollTimeout)
		defer cancel()
		state, err := src.Poll(ctx)
		return VolumeMsg{State: state, OK: err == nil}
	})
}

func kubeCmd(src kubeSource, seconds int) tea.Cmd {
	return tea.Tick(pollDelay(seconds), func(time.Time) tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), pollTimeout)
		defer cancel()
		state, err := src.Poll(ctx)
		return KubeMsg{State: state, OK: err == nil}
	})
}

func mprisCmd(src mprisSource, seconds int) tea.Cmd {
	return tea.Tick(pollDelay(seconds), func(time.Time) tea.Msg {
		state, err := src.Poll()
		return MprisMsg{State: state, OK: err == nil}
	})
}

func pollDelay(seconds int) time.Duration {
	if seconds == 0 {
		return time.Millisecond
	}
	return after(seconds)
}
