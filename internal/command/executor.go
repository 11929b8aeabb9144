// Package command wraps process execution behind an interface so widget
// code that shells out (kubectl, iwctl, wpctl) can be tested against fakes.
package command

import (
	"context"
	"os/exec"
	"strings"
)

// Executor creates exec.Cmd instances. The indirection exists for
// dependency injection: tests supply an executor that fabricates output
// without spawning processes.
type Executor interface {
	// CommandContext creates a context-aware exec.Cmd for the given
	// command and arguments.
	CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd
}

// RealExecutor is the production implementation backed by os/exec.
type RealExecutor struct{}

// CommandContext creates a standard context-aware exec.Cmd.
func (e *RealExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, name, args...)
}

// Output runs a command and returns its trimmed stdout. A non-zero exit or
// missing binary is an error; callers in the widget layer treat that as
// "no data".
func Output(ctx context.Context, e Executor, name string, args ...string) (string, error) {
	out, err := e.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
