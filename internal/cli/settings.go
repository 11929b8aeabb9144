package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jbshell/jbshell/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect and initialize configuration",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings()
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(settings)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	},
}

var settingsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Long: `Write the default configuration to ~/.config/jbshell/config.yaml.
Fails if the file already exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.SettingsFile()
		if err != nil {
			return err
		}
		if config.FileExists(path) {
			return fmt.Errorf("%s already exists", path)
		}
		settings, err := config.LoadSettings()
		if err != nil {
			return err
		}
		if err := config.SaveSettings(settings); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsInitCmd)
	settingsCmd.AddCommand(settingsShowCmd)
}
