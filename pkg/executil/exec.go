// Package executil provides shell execution utilities.
package executil

import (
	"context"
	"fmt"
	"os/exec"
)

// Executor runs external commands.
type Executor interface {
	// Run executes a command and returns its combined output.
	Run(ctx context.Context, cmd string, args ...string) ([]byte, error)
	// LookPath reports the resolved path of an executable, or an error
	// if it is not on PATH.
	LookPath(cmd string) (string, error)
}

// RealExecutor calls actual shell commands.
type RealExecutor struct{}

// Run executes a command and returns its combined output.
func (e *RealExecutor) Run(ctx context.Context, cmd string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, cmd, args...).CombinedOutput()
	if err != nil {
		return out, fmt.Errorf("exec %s: %w", cmd, err)
	}
	return out, nil
}

// LookPath resolves an executable on PATH.
func (e *RealExecutor) LookPath(cmd string) (string, error) {
	return exec.LookPath(cmd)
}
