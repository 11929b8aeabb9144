package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jbshell/jbshell/internal/hypr"
)

var queryCmd = &cobra.Command{
	Use:   "query {monitors|workspaces|clients}",
	Short: "Print compositor state for debugging",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	client, err := hypr.NewClient()
	if err != nil {
		return fmt.Errorf("failed to locate Hyprland sockets: %w", err)
	}

	switch args[0] {
	case "monitors":
		monitors, err := hypr.Monitors(client)
		if err != nil {
			return err
		}
		for _, m := range monitors {
			focus := " "
			if m.Focused {
				focus = "*"
			}
			fmt.Printf("%s %-12s %dx%d@%d,%d  active workspace %d\n",
				focus, m.Name, m.Width, m.Height, m.X, m.Y, m.ActiveWorkspace.ID)
		}
	case "workspaces":
		workspaces, err := hypr.Workspaces(client)
		if err != nil {
			return err
		}
		for _, ws := range workspaces {
			fmt.Printf("%3d  %-12s %d windows\n", ws.ID, ws.Monitor, ws.Windows)
		}
	case "clients":
		clients, err := hypr.Clients(client)
		if err != nil {
			return err
		}
		for _, c := range clients {
			wsID := 0
			if c.Workspace != nil {
				wsID = c.Workspace.ID
			}
			title := c.Title
			if len(title) > 50 {
				title = title[:50]
			}
			fmt.Printf("%s  ws %3d  %-20s %s\n", c.Address, wsID, c.Class, title)
		}
	default:
		return fmt.Errorf("expected monitors, workspaces or clients, got %q", args[0])
	}
	return nil
}
