package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jbshell/jbshell/internal/config"
	"github.com/jbshell/jbshell/internal/hypr"
)

var workspaceCmd = &cobra.Command{
	Use:   "workspace {next|prev|<id>}",
	Short: "Switch workspaces from the command line",
	Long: `Switch workspaces without the bar running, for keybind use:

  jbshell workspace next
  jbshell workspace prev
  jbshell workspace 3

next/prev respect the empty_scroll setting: by default they cycle
occupied workspaces; with empty_scroll they walk sequential numbers,
creating empty workspaces as they go.`,
	Args: cobra.ExactArgs(1),
	RunE: runWorkspace,
}

func runWorkspace(cmd *cobra.Command, args []string) error {
	client, err := hypr.NewClient()
	if err != nil {
		return fmt.Errorf("failed to locate Hyprland sockets: %w", err)
	}
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var spec string
	switch args[0] {
	case "next":
		spec = "e+1"
		if settings.EmptyScroll {
			spec = "+1"
		}
	case "prev", "previous":
		spec = "e-1"
		if settings.EmptyScroll {
			spec = "-1"
		}
	default:
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("expected next, prev or a workspace id, got %q", args[0])
		}
		spec = strconv.Itoa(id)
	}
	return hypr.DispatchWorkspace(client, spec)
}
