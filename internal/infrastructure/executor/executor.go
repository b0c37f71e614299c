// Package executor runs vetted commands on the host shell.
package executor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/sleepystudio/terminai/internal/domain"
	"github.com/sleepystudio/terminai/internal/ports"
)

// ShellExecutor runs commands through a shell-interpreted subprocess with the
// parent's standard streams attached, so the suggested command behaves as if
// the user had typed it.
type ShellExecutor struct {
	shell  string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewShellExecutor builds a new executor, shell defaults to $SHELL then /bin/sh.
func NewShellExecutor(shell string) *ShellExecutor {
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}
	return &ShellExecutor{
		shell:  shell,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// Execute implements ports.CommandExecutor. A non-zero exit from the command
// is not an error of the executor: the command ran, its code is reported in
// the result.
func (e *ShellExecutor) Execute(ctx context.Context, command string) (domain.ExecutionResult, error) {
	c := exec.CommandContext(ctx, e.shell, "-c", command)
	c.Stdin = e.stdin
	c.Stdout = e.stdout
	c.Stderr = e.stderr

	start := time.Now()
	err := c.Run()
	result := domain.ExecutionResult{
		DurationMS: time.Since(start).Milliseconds(),
	}

	if exitErr, ok := err.(*exec.ExitError); ok {
		result.Ran = true
		// A context kill surfaces as an ExitError with code -1; that is not
		// an exit code the command chose, so report the interruption instead.
		if ctxErr := ctx.Err(); ctxErr != nil {
			result.Err = ctxErr
			return result, nil
		}
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	if err != nil {
		result.Err = err
		return result, err
	}
	result.Ran = true
	return result, nil
}

var _ ports.CommandExecutor = (*ShellExecutor)(nil)
