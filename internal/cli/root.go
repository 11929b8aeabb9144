// Package cli implements the jbshell CLI commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/jbshell/jbshell/internal/bar"
)

var rootCmd = &cobra.Command{
	Use:   "jbshell",
	Short: "A Hyprland status bar",
	Long: `jbshell renders a per-monitor status bar for Hyprland: workspace
state driven by the compositor's event socket, plus clock, battery,
network, volume and kubectl-context widgets.

Running jbshell with no arguments starts the bar.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return bar.Run()
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(kubeCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(workspaceCmd)
}
