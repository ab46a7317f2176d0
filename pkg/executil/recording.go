package executil

import (
	"context"
	"fmt"
	"sync"
)

// RecordedCommand captures a command that was executed.
type RecordedCommand struct {
	Cmd  string
	Args []string
}

// RecordingExecutor captures commands for testing.
// Configure Outputs and Errors maps to control return values. Keys are
// matched first against "cmd firstArg" and then against the bare command
// name, so callers can give lpstat -e and lpstat -d distinct outputs.
type RecordingExecutor struct {
	mu       sync.Mutex
	Commands []RecordedCommand

	// Outputs maps command keys to their output.
	Outputs map[string][]byte

	// Errors maps command keys to their error.
	Errors map[string]error

	// Missing lists binaries that LookPath should report as absent.
	Missing map[string]bool
}

// Run records the command and returns configured output/error.
func (e *RecordingExecutor) Run(ctx context.Context, cmd string, args ...string) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.Commands = append(e.Commands, RecordedCommand{
		Cmd:  cmd,
		Args: args,
	})

	key := cmd
	if len(args) > 0 {
		key = cmd + " " + args[0]
	}

	var out []byte
	var err error

	if e.Outputs != nil {
		var ok bool
		if out, ok = e.Outputs[key]; !ok {
			out = e.Outputs[cmd]
		}
	}
	if e.Errors != nil {
		var ok bool
		if err, ok = e.Errors[key]; !ok {
			err = e.Errors[cmd]
		}
	}

	return out, err
}

// LookPath reports the command as found unless listed in Missing.
func (e *RecordingExecutor) LookPath(cmd string) (string, error) {
	if e.Missing != nil && e.Missing[cmd] {
		return "", fmt.Errorf("exec: %q: executable file not found in $PATH", cmd)
	}
	return "/usr/bin/" + cmd, nil
}

// Reset clears recorded commands.
func (e *RecordingExecutor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Commands = nil
}
