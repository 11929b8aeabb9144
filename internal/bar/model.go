package bar

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/jbshell/jbshell/internal/hypr"
	"github.com/jbshell/jbshell/internal/logging"
	"github.com/jbshell/jbshell/internal/models"
	"github.com/jbshell/jbshell/internal/theme"
	"github.com/jbshell/jbshell/internal/widgets"
	"github.com/jbshell/jbshell/internal/workspace"
)

// Widget sources. The bar polls through these so tests can substitute
// canned samples for the real D-Bus and exec-backed widgets.
type batterySource interface {
	Poll() (widgets.BatteryState, error)
}

type networkSource interface {
	Poll(ctx context.Context) (widgets.NetworkState, error)
}

type volumeSource interface {
	Poll(ctx context.Context) (widgets.VolumeState, error)
}

type kubeSource interface {
	Poll(ctx context.Context) (widgets.KubeState, error)
}

type mprisSource interface {
	Poll() (widgets.MprisState, error)
}

// monitorRow is one monitor's slice of the bar: its registry and the
// synchronizer that keeps it honest.
type monitorRow struct {
	name string
	sync *workspace.Synchronizer
	reg  *workspace.Registry
}

// Model is the bubbletea model for the whole bar. Every registry mutation
// happens inside Update, so the workspace state needs no locking.
type Model struct {
	conn     hypr.Commander
	settings *models.Settings
	styles   theme.Styles
	keys     keyMap
	program  *programRef
	log      *logrus.Entry

	rows    []*monitorRow
	focused int

	width    int
	streamUp bool

	battery batterySource
	network networkSource
	volume  volumeSource
	kube    kubeSource
	mpris   mprisSource

	clockState   widgets.ClockState
	batteryState widgets.BatteryState
	batteryOK    bool
	networkState widgets.NetworkState
	networkOK    bool
	volumeState  widgets.VolumeState
	volumeOK     bool
	kubeState    widgets.KubeState
	kubeOK       bool
	mprisState   widgets.MprisState
	mprisOK      bool

	windowTitle string
}

// NewModel builds the bar model for the given monitors. Rows are ordered by
// monitor position so the bar reads left to right like the physical layout.
func NewModel(conn hypr.Commander, monitors []hypr.Monitor, settings *models.Settings, styles theme.Styles, program *programRef) *Model {
	sorted := make([]hypr.Monitor, len(monitors))
	copy(sorted, monitors)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	m := &Model{
		conn:     conn,
		settings: settings,
		styles:   styles,
		keys:     defaultKeyMap(),
		program:  program,
		streamUp: true,
		log:      logging.NewLogger("bar"),
	}
	for _, mon := range sorted {
		reg := workspace.NewRegistry(nil)
		m.rows = append(m.rows, &monitorRow{
			name: mon.Name,
			sync: workspace.NewSynchronizer(mon.Name, conn, reg, settings.EmptyScroll),
			reg:  reg,
		})
	}
	return m
}

// Init schedules the clock, the enabled widget polls, and a readiness probe
// if any synchronizer is still waiting for the compositor.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{clockTickCmd(m.settings.Intervals.Clock)}
	if m.battery != nil {
		cmds = append(cmds, batteryCmd(m.battery, 0))
	}
	if m.network != nil {
		cmds = append(cmds, networkCmd(m.network, 0))
	}
	if m.volume != nil {
		cmds = append(cmds, volumeCmd(m.volume, 0))
	}
	if m.kube != nil {
		cmds = append(cmds, kubeCmd(m.kube, 0))
	}
	if m.mpris != nil {
		cmds = append(cmds, mprisCmd(m.mpris, 0))
	}
	if !m.allSynced() {
		cmds = append(cmds, readinessCmd(m.conn))
	}
	return tea.Batch(cmds...)
}

func (m *Model) allSynced() bool {
	for _, row := range m.rows {
		if !row.sync.Synced() {
			return false
		}
	}
	return true
}

func (m *Model) focusedRow() *monitorRow {
	if len(m.rows) == 0 {
		return nil
	}
	return m.rows[m.focused]
}

// Update is the single place all state mutates.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case HyprEventMsg:
		m.handleHyprEvent(msg.Event)
		return m, nil

	case StreamClosedMsg:
		m.streamUp = false
		m.log.Warn("event stream closed")
		return m, nil

	case ReadyMsg:
		if msg.Ready {
			for _, row := range m.rows {
				row.sync.EnsureSynced()
			}
		}
		if !m.allSynced() {
			return m, readinessCmd(m.conn)
		}
		return m, nil

	case ClockTickMsg:
		m.clockState = widgets.Clock(msg.Now, m.settings.Clock.DateFormat, m.settings.Clock.TimeFormat)
		return m, clockTickCmd(m.settings.Intervals.Clock)

	case BatteryMsg:
		if msg.OK {
			m.batteryState = msg.State
			m.batteryOK = true
		}
		return m, batteryCmd(m.battery, m.settings.Intervals.Battery)

	case NetworkMsg:
		if msg.OK {
			m.networkState = msg.State
		}
		m.networkOK = msg.OK
		return m, networkCmd(m.network, m.settings.Intervals.Network)

	case VolumeMsg:
		if msg.OK {
			m.volumeState = msg.State
		}
		m.volumeOK = msg.OK
		return m, volumeCmd(m.volume, m.settings.Intervals.Volume)

	case KubeMsg:
		if msg.OK {
			m.kubeState = msg.State
		}
		m.kubeOK = msg.OK
		return m, kubeCmd(m.kube, m.settings.Intervals.Kube)

	case MprisMsg:
		if msg.OK {
			m.mprisState = msg.State
		}
		m.mprisOK = msg.OK
		return m, mprisCmd(m.mpris, m.settings.Intervals.Mpris)

	case ThemeReloadMsg:
		m.styles = theme.New(msg.Theme)
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		if row := m.focusedRow(); row != nil {
			if err := row.sync.Next(); err != nil {
				m.log.WithError(err).Debug("next workspace dispatch failed")
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Previous):
		if row := m.focusedRow(); row != nil {
			if err := row.sync.Previous(); err != nil {
				m.log.WithError(err).Debug("previous workspace dispatch failed")
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.FocusNext):
		if len(m.rows) > 0 {
			m.focused = (m.focused + 1) % len(m.rows)
		}
		return m, nil

	case key.Matches(msg, m.keys.Workspace):
		id, err := strconv.Atoi(msg.String())
		if err != nil {
			return m, nil
		}
		if row := m.focusedRow(); row != nil {
			if err := row.sync.Switch(id); err != nil {
				m.log.WithError(err).Debug("workspace switch dispatch failed")
			}
		}
		return m, nil
	}
	return m, nil
}

// handleHyprEvent fans one compositor event out to every row, then applies
// the render-side policies: an activated workspace sheds its urgent flag,
// and the active window title follows the activewindow event.
func (m *Model) handleHyprEvent(ev hypr.Event) {
	for _, row := range m.rows {
		row.sync.HandleEvent(ev)
		if active := row.reg.ActiveID(); active != 0 {
			row.reg.ClearUrgent(active)
		}
	}
	if ev.Name == "activewindow" {
		_, title, found := strings.Cut(ev.Raw, ",")
		if !found {
			title = ""
		}
		m.windowTitle = widgets.FormatWindowTitle(title)
	}
}
