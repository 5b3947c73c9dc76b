package testutil

import (
	"context"
	"errors"
	"io"

	"github.com/bmark-cli/bmark/internal/core/ports"
)

// RunCall records one invocation of a MockProcessRunner method.
type RunCall struct {
	Command string
	Args    []string
	Stdin   string
}

// MockProcessRunner is a mock implementation of ports.ProcessRunner.
type MockProcessRunner struct {
	RunForegroundFunc func(command string, args ...string) (int, error)
	RunPipedFunc      func(command string, args []string, stdin string) (string, int, error)
	StartFunc         func(command string, args ...string) error

	ForegroundCalls []RunCall
	PipedCalls      []RunCall
	StartCalls      []RunCall
}

// RunForeground records the call and delegates to RunForegroundFunc.
func (m *MockProcessRunner) RunForeground(_ context.Context, command string, args ...string) (int, error) {
	m.ForegroundCalls = append(m.ForegroundCalls, RunCall{Command: command, Args: args})
	if m.RunForegroundFunc != nil {
		return m.RunForegroundFunc(command, args...)
	}
	return 0, nil
}

// RunPiped records the call, including everything read from stdin, and delegates to RunPipedFunc.
func (m *MockProcessRunner) RunPiped(_ context.Context, command string, args []string, stdin io.Reader) (string, int, error) {
	in, err := io.ReadAll(stdin)
	if err != nil {
		return "", -1, err
	}
	m.PipedCalls = append(m.PipedCalls, RunCall{Command: command, Args: args, Stdin: string(in)})
	if m.RunPipedFunc != nil {
		return m.RunPipedFunc(command, args, string(in))
	}
	return "", -1, errors.New("MockProcessRunner.RunPipedFunc not implemented")
}

// Start records the call and delegates to StartFunc.
func (m *MockProcessRunner) Start(command string, args ...string) error {
	m.StartCalls = append(m.StartCalls, RunCall{Command: command, Args: args})
	if m.StartFunc != nil {
		return m.StartFunc(command, args...)
	}
	return nil
}

var _ ports.ProcessRunner = (*MockProcessRunner)(nil)
