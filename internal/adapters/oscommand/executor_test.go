package oscommand

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestRunner(stdout, stderr *bytes.Buffer) *OSProcessRunner {
	return &OSProcessRunner{stdin: strings.NewReader(""), stdout: stdout, stderr: stderr}
}

func TestOSProcessRunner_RunForeground(t *testing.T) {
	tests := []struct {
		name       string
		command    string
		args       []string
		wantStatus int
		wantStdout string
		wantErr    bool
	}{
		{"success", "sh", []string{"-c", "echo hi"}, 0, "hi\n", false},
		{"non-zero exit is a status, not an error", "sh", []string{"-c", "exit 3"}, 3, "", false},
		{"missing program is an error", "bmark-no-such-program", nil, -1, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			r := newTestRunner(&stdout, &stderr)

			status, err := r.RunForeground(context.Background(), tt.command, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RunForeground() error = %v, wantErr %v", err, tt.wantErr)
			}
			if status != tt.wantStatus {
				t.Errorf("RunForeground() status = %d, want %d", status, tt.wantStatus)
			}
			if stdout.String() != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantStdout)
			}
		})
	}
}

func TestOSProcessRunner_RunPiped(t *testing.T) {
	tests := []struct {
		name       string
		command    string
		args       []string
		stdin      string
		wantOut    string
		wantStatus int
		wantErr    bool
	}{
		{"echoes stdin", "cat", nil, "a - \"/x\"\nb - \"/y\"\n", "a - \"/x\"\nb - \"/y\"\n", 0, false},
		{"selects one line", "sh", []string{"-c", "tail -n 1"}, "a - \"/x\"\nb - \"/y\"\n", "b - \"/y\"\n", 0, false},
		{"cancelled picker", "sh", []string{"-c", "cat >/dev/null; exit 2"}, "a - \"/x\"\n", "", 2, false},
		{"missing program", "bmark-no-such-program", nil, "", "", -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			r := newTestRunner(&stdout, &stderr)

			out, status, err := r.RunPiped(context.Background(), tt.command, tt.args, strings.NewReader(tt.stdin))
			if (err != nil) != tt.wantErr {
				t.Fatalf("RunPiped() error = %v, wantErr %v", err, tt.wantErr)
			}
			if out != tt.wantOut {
				t.Errorf("RunPiped() stdout = %q, want %q", out, tt.wantOut)
			}
			if status != tt.wantStatus {
				t.Errorf("RunPiped() status = %d, want %d", status, tt.wantStatus)
			}
		})
	}
}

func TestOSProcessRunner_Start(t *testing.T) {
	marker := filepath.Join(t.TempDir(), "started")
	r := newTestRunner(&bytes.Buffer{}, &bytes.Buffer{})

	if err := r.Start("touch", marker); err != nil {
		t.Fatalf("Start() unexpected error: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		if _, err := os.Stat(marker); err == nil {
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("detached process never ran")
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestOSProcessRunner_Start_MissingProgram(t *testing.T) {
	r := newTestRunner(&bytes.Buffer{}, &bytes.Buffer{})
	if err := r.Start("bmark-no-such-program"); err == nil {
		t.Error("Start() expected error for missing program, got nil")
	}
}
