// Package theme turns the theme config into lipgloss styles and hot-reloads
// it while the bar runs.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jbshell/jbshell/internal/models"
)

// Styles is the resolved style set the bar renders with.
type Styles struct {
	Bar     lipgloss.Style
	Segment lipgloss.Style
	Dim     lipgloss.Style
	Accent  lipgloss.Style
	Urgent  lipgloss.Style

	Workspace       lipgloss.Style
	WorkspaceActive lipgloss.Style
	WorkspaceEmpty  lipgloss.Style
	WorkspaceUrgent lipgloss.Style
}

// New builds the style set from a theme.
func New(t *models.Theme) Styles {
	bg := lipgloss.Color(t.BarBg)
	return Styles{
		Bar:     lipgloss.NewStyle().Background(bg),
		Segment: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Foreground)).Background(bg),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color(t.Dim)).Background(bg),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Background(bg),
		Urgent:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Urgent)).Background(bg).Bold(true),

		Workspace: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Foreground)).Background(bg).Padding(0, 1),
		WorkspaceActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.WorkspaceActiveFg)).
			Background(lipgloss.Color(t.WorkspaceActiveBg)).Bold(true).Padding(0, 1),
		WorkspaceEmpty: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.WorkspaceEmptyFg)).Background(bg).Padding(0, 1),
		WorkspaceUrgent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Urgent)).Background(bg).Bold(true).Padding(0, 1),
	}
}

// Default returns the style set for the built-in theme.
func Default() Styles {
	return New(models.NewTheme())
}
