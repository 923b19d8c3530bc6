package execrunner

import (
	"bytes"
	"context"
	"os/exec"
)

// CommandRunner defines the interface for running external commands
// This allows mocking exec.Command in tests
type CommandRunner interface {
	// Run executes a command and returns its captured stderr alongside any
	// error. Callers decide whether the captured stream is logged; it is
	// never attached to the returned error.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)

	// Output executes a command and returns its stdout
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecCommandRunner is the production implementation using os/exec
type ExecCommandRunner struct{}

// Run executes a command, capturing stderr instead of inheriting it so tool
// internals never leak into responses
func (r *ExecCommandRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stderr.Bytes(), err
}

// Output executes a command and returns its stdout
func (r *ExecCommandRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.Output()
}

// Ensure ExecCommandRunner implements CommandRunner
var _ CommandRunner = (*ExecCommandRunner)(nil)
