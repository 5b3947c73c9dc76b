package ports

import (
	"context"
	"io"
)

// ProcessRunner defines an interface for running external programs.
type ProcessRunner interface {
	// RunForeground runs the program attached to the current terminal and waits for it.
	// A non-zero exit is reported through exitStatus, not err.
	RunForeground(ctx context.Context, command string, args ...string) (exitStatus int, err error)

	// RunPiped feeds stdin to the program, waits for it and returns what it printed on stdout.
	RunPiped(ctx context.Context, command string, args []string, stdin io.Reader) (stdout string, exitStatus int, err error)

	// Start launches the program detached and does not wait for it.
	Start(command string, args ...string) error
}
