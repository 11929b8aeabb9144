package bar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jbshell/jbshell/internal/widgets"
)

// View renders one status line per monitor: workspaces and the kube context
// on the left, the focused window title in the middle, the widget cluster
// and clock on the right.
func (m *Model) View() string {
	if len(m.rows) == 0 {
		return m.styles.Dim.Render("no monitors")
	}
	lines := make([]string, 0, len(m.rows))
	for i, row := range m.rows {
		lines = append(lines, m.renderRow(row, i == m.focused))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderRow(row *monitorRow, focused bool) string {
	left := m.renderLeft(row, focused)
	right := m.renderRight()
	center := m.styles.Segment.Render(m.windowTitle)

	if m.width <= 0 {
		return left + "  " + center + "  " + right
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < lipgloss.Width(center)+2 {
		center = ""
	}
	pad := gap - lipgloss.Width(center)
	leftPad := pad / 2
	if leftPad < 1 {
		leftPad = 1
	}
	rightPad := pad - leftPad
	if rightPad < 0 {
		rightPad = 0
	}
	fill := m.styles.Bar.Render
	return left + fill(strings.Repeat(" ", leftPad)) + center + fill(strings.Repeat(" ", rightPad)) + right
}

func (m *Model) renderLeft(row *monitorRow, focused bool) string {
	var b strings.Builder

	label := row.name
	if focused && len(m.rows) > 1 {
		b.WriteString(m.styles.Accent.Render(label))
	} else {
		b.WriteString(m.styles.Dim.Render(label))
	}
	b.WriteString(m.styles.Bar.Render(" "))

	if !m.streamUp {
		b.WriteString(m.styles.Urgent.Render("· disconnected ·"))
		return b.String()
	}

	for _, id := range row.reg.IDs() {
		state, ok := row.reg.Get(id)
		if !ok {
			continue
		}
		style := m.styles.Workspace
		switch {
		case state.Urgent:
			style = m.styles.WorkspaceUrgent
		case state.Active:
			style = m.styles.WorkspaceActive
		case state.Empty:
			style = m.styles.WorkspaceEmpty
		}
		b.WriteString(style.Render(strconv.Itoa(id)))
	}

	if m.kube != nil && m.kubeOK {
		b.WriteString(m.styles.Bar.Render("  "))
		b.WriteString(m.styles.Dim.Render("⎈ " + m.kubeState.Label()))
	}
	return b.String()
}

func (m *Model) renderRight() string {
	segments := make([]string, 0, 5)

	if m.mpris != nil && m.mprisOK && m.mprisState.Active {
		segments = append(segments, m.styles.Dim.Render(m.mprisState.Label()))
	}
	if m.volume != nil && m.volumeOK {
		segments = append(segments, m.styles.Segment.Render(
			fmt.Sprintf("%s %d%%", widgets.VolumeGlyph(m.volumeState), m.volumeState.Percent)))
	}
	if m.network != nil && m.networkOK {
		if m.networkState.Connected {
			segments = append(segments, m.styles.Segment.Render(
				widgets.SignalGlyph(m.networkState)+" "+m.networkState.SSID))
		} else {
			segments = append(segments, m.styles.Dim.Render("offline"))
		}
	}
	if m.battery != nil && m.batteryOK && m.batteryState.Present {
		style := m.styles.Segment
		if m.batteryState.Percentage <= 15 && !m.batteryState.Charging {
			style = m.styles.Urgent
		}
		segments = append(segments, style.Render(
			fmt.Sprintf("%s %d%%", widgets.BatteryGlyph(m.batteryState), m.batteryState.Percentage)))
	}
	segments = append(segments,
		m.styles.Dim.Render(m.clockState.Date),
		m.styles.Segment.Render(m.clockState.Time))

	return strings.Join(segments, m.styles.Bar.Render("  "))
}
