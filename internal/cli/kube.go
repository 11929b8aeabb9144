package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jbshell/jbshell/internal/command"
	"github.com/jbshell/jbshell/internal/widgets"
)

var kubeCmd = &cobra.Command{
	Use:   "kube [context]",
	Short: "List or switch the kubeconfig context",
	Long: `With no argument, list kubeconfig contexts (the current one marked
with *). With an argument, switch to that context; the bar's kube segment
picks the change up on its next poll.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runKube,
}

func runKube(cmd *cobra.Command, args []string) error {
	kube := widgets.NewKube(&command.RealExecutor{})

	if len(args) == 1 {
		return kube.UseContext(cmd.Context(), args[0])
	}

	state, err := kube.Poll(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list contexts: %w", err)
	}
	for _, name := range state.Contexts {
		marker := " "
		if name == state.Current {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, name)
	}
	return nil
}
