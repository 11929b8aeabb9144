package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/jbshell/jbshell/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("jbshell %s (%s)\n", buildinfo.Version, buildinfo.CommitHash)
		fmt.Printf("  OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		fmt.Printf("  Go: %s\n", runtime.Version())
	},
}
