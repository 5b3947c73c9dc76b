package oscommand

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/bmark-cli/bmark/internal/core/ports"
	"github.com/bmark-cli/bmark/internal/logging"
)

// OSProcessRunner implements the ProcessRunner interface using os/exec.
type OSProcessRunner struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewOSProcessRunner creates a new OSProcessRunner attached to the process's standard streams.
func NewOSProcessRunner() ports.ProcessRunner {
	return &OSProcessRunner{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
}

// RunForeground runs the program with the current terminal and waits for it to exit.
func (r *OSProcessRunner) RunForeground(ctx context.Context, command string, args ...string) (int, error) {
	logging.LogCommand(command, args)
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	return exitStatus(command, cmd.Run())
}

// RunPiped writes stdin to the program and returns its stdout. The program's stderr
// stays on the terminal so interactive pickers can draw their interface there.
func (r *OSProcessRunner) RunPiped(ctx context.Context, command string, args []string, stdin io.Reader) (string, int, error) {
	logging.LogCommand(command, args)
	cmd := exec.CommandContext(ctx, command, args...)
	var outBuf bytes.Buffer
	cmd.Stdin = stdin
	cmd.Stdout = &outBuf
	cmd.Stderr = r.stderr

	status, err := exitStatus(command, cmd.Run())
	return outBuf.String(), status, err
}

// Start launches the program without waiting for it. The child is released
// so it outlives this process.
func (r *OSProcessRunner) Start(command string, args ...string) error {
	logging.LogCommand(command, args)
	cmd := exec.Command(command, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", command, err)
	}
	return cmd.Process.Release()
}

// exitStatus separates "ran and exited non-zero" from "could not run at all".
func exitStatus(command string, err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("executing %s: %w", command, err)
}
