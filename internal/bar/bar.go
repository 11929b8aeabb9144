// Package bar implements the status bar: a bubbletea program that renders
// per-monitor workspace state driven by Hyprland's event socket, alongside
// polled system widgets.
package bar

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jbshell/jbshell/internal/command"
	"github.com/jbshell/jbshell/internal/config"
	"github.com/jbshell/jbshell/internal/hypr"
	"github.com/jbshell/jbshell/internal/logging"
	"github.com/jbshell/jbshell/internal/models"
	"github.com/jbshell/jbshell/internal/theme"
	"github.com/jbshell/jbshell/internal/widgets"
)

// programRef is a shared reference to the tea.Program for goroutine sends.
// It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Clear nils out the program reference, preventing post-exit sends.
func (r *programRef) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = nil
}

// Run launches the bar and blocks until it exits.
func Run() error {
	log := logging.NewLogger("bar")

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	themeCfg, err := config.LoadTheme()
	if err != nil {
		return fmt.Errorf("failed to load theme: %w", err)
	}

	client, err := hypr.NewClient()
	if err != nil {
		return fmt.Errorf("failed to locate Hyprland sockets: %w", err)
	}
	monitors, err := hypr.Monitors(client)
	if err != nil {
		return fmt.Errorf("failed to query monitors: %w", err)
	}

	ref := &programRef{}
	model := NewModel(client, monitors, settings, theme.New(themeCfg), ref)
	attachWidgets(model, settings)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := hypr.NewListener(client)
	if err := listener.Start(ctx); err != nil {
		return fmt.Errorf("failed to open event stream: %w", err)
	}
	go func() {
		for ev := range listener.Events() {
			ref.Send(HyprEventMsg{Event: ev})
		}
		ref.Send(StreamClosedMsg{})
	}()

	watcher, err := theme.NewWatcher()
	if err != nil {
		log.WithError(err).Warn("theme hot-reload disabled")
	} else if err := watcher.Start(); err != nil {
		log.WithError(err).Warn("theme hot-reload disabled")
	} else {
		defer watcher.Stop()
		go func() {
			for t := range watcher.Themes() {
				ref.Send(ThemeReloadMsg{Theme: t})
			}
		}()
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	ref.Set(p)
	defer ref.Clear()

	_, err = p.Run()
	return err
}

// attachWidgets wires the enabled widget sources onto the model. A source
// that fails to initialize (no system bus, no session bus) is logged and
// left off rather than failing the bar.
func attachWidgets(m *Model, settings *models.Settings) {
	log := logging.NewLogger("widgets")
	exec := &command.RealExecutor{}

	if settings.Widgets.Battery {
		battery, err := widgets.NewBattery()
		if err != nil {
			log.WithError(err).Warn("battery widget unavailable")
		} else {
			m.battery = battery
		}
	}
	if settings.Widgets.Network {
		m.network = widgets.NewNetwork(exec, settings.NetworkInterface)
	}
	if settings.Widgets.Volume {
		m.volume = widgets.NewVolume(exec)
	}
	if settings.Widgets.Kube {
		m.kube = widgets.NewKube(exec)
	}
	if settings.Widgets.Mpris {
		mpris, err := widgets.NewMpris()
		if err != nil {
			log.WithError(err).Warn("mpris widget unavailable")
		} else {
			m.mpris = mpris
		}
	}
}
