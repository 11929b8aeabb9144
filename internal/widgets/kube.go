package widgets

import (
	"context"
	"strings"

	"github.com/jbshell/jbshell/internal/command"
)

// KubeState lists the kubeconfig contexts and the currently selected one.
// Current is empty when no context is configured or kubectl is missing.
type KubeState struct {
	Current  string
	Contexts []string
}

// Kube polls kubectl for the cluster-context switcher segment.
type Kube struct {
	exec command.Executor
}

// NewKube builds the kube-context widget.
func NewKube(exec command.Executor) *Kube {
	return &Kube{exec: exec}
}

// Poll reads the current context and the full context list. A failing
// current-context lookup (no kubeconfig, no context set) is not an error;
// the segment just shows "no context".
func (k *Kube) Poll(ctx context.Context) (KubeState, error) {
	state := KubeState{}

	if current, err := command.Output(ctx, k.exec, "kubectl", "config", "current-context"); err == nil {
		state.Current = current
	}

	raw, err := command.Output(ctx, k.exec, "kubectl", "config", "get-contexts", "-o", "name")
	if err != nil {
		return state, err
	}
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			state.Contexts = append(state.Contexts, line)
		}
	}
	return state, nil
}

// UseContext switches the active kubeconfig context.
func (k *Kube) UseContext(ctx context.Context, name string) error {
	_, err := command.Output(ctx, k.exec, "kubectl", "config", "use-context", name)
	return err
}

// Label renders the segment text for a sample.
func (s KubeState) Label() string {
	if s.Current == "" {
		return "no context"
	}
	return TruncateMiddle(s.Current, 24)
}
