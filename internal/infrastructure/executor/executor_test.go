package executor

import (
	"bytes"
	"context"
	"errors"
	"runtime"
	"testing"
	"time"
)

func newTestExecutor(out, errOut *bytes.Buffer) *ShellExecutor {
	e := NewShellExecutor("/bin/sh")
	e.stdout = out
	e.stderr = errOut
	return e
}

func TestExecuteSuccess(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX shell required")
	}
	var out, errOut bytes.Buffer
	result, err := newTestExecutor(&out, &errOut).Execute(context.Background(), "echo hello")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !result.Ran || result.ExitCode != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if out.String() != "hello\n" {
		t.Fatalf("stdout = %q", out.String())
	}
}

// A non-zero exit is informational: the command ran, the code is reported,
// and the executor returns no error.
func TestExecuteNonZeroExitIsNotAnError(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX shell required")
	}
	var out, errOut bytes.Buffer
	result, err := newTestExecutor(&out, &errOut).Execute(context.Background(), "exit 7")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !result.Ran || result.ExitCode != 7 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

// A command killed by an expiring context must not masquerade as an exit
// code: the result carries the context error instead.
func TestExecuteContextKillIsNotAnExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX shell required")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	var out, errOut bytes.Buffer
	result, err := newTestExecutor(&out, &errOut).Execute(ctx, "sleep 2 && echo done")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !result.Ran {
		t.Fatal("expected the command to have started")
	}
	if !errors.Is(result.Err, context.DeadlineExceeded) {
		t.Fatalf("Err = %v, want deadline exceeded", result.Err)
	}
	if result.ExitCode != 0 {
		t.Fatalf("ExitCode = %d, want 0 for an interrupted command", result.ExitCode)
	}
	if out.String() != "" {
		t.Fatalf("stdout = %q, want empty for a killed command", out.String())
	}
}

func TestExecuteShellInterpretation(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX shell required")
	}
	var out, errOut bytes.Buffer
	result, err := newTestExecutor(&out, &errOut).Execute(context.Background(), "echo a && echo b")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !result.Ran {
		t.Fatalf("unexpected result: %+v", result)
	}
	if out.String() != "a\nb\n" {
		t.Fatalf("stdout = %q, want shell-interpreted chain", out.String())
	}
}
