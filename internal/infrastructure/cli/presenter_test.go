package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sleepystudio/terminai/internal/domain"
)

func newTestPresenter() (*ConsolePresenter, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &ConsolePresenter{out: out, errOut: errOut}, out, errOut
}

func TestReportExecutionZeroExitIsSilent(t *testing.T) {
	p, out, errOut := newTestPresenter()
	p.ReportExecution(domain.ExecutionResult{Ran: true})
	if out.Len() != 0 || errOut.Len() != 0 {
		t.Fatalf("unexpected output: stdout=%q stderr=%q", out.String(), errOut.String())
	}
}

func TestReportExecutionNonZeroExit(t *testing.T) {
	p, _, errOut := newTestPresenter()
	p.ReportExecution(domain.ExecutionResult{Ran: true, ExitCode: 2})
	if !strings.Contains(errOut.String(), "exited with code 2") {
		t.Fatalf("stderr = %q", errOut.String())
	}
}

// An interrupted command reports the interruption, never a fake exit code.
func TestReportExecutionInterrupted(t *testing.T) {
	p, _, errOut := newTestPresenter()
	p.ReportExecution(domain.ExecutionResult{Ran: true, Err: context.DeadlineExceeded})
	got := errOut.String()
	if !strings.Contains(got, "interrupted") {
		t.Fatalf("stderr = %q, want an interruption report", got)
	}
	if strings.Contains(got, "-1") {
		t.Fatalf("stderr = %q, must not present a synthetic exit code", got)
	}
}

func TestReportExecutionStartFailure(t *testing.T) {
	p, _, errOut := newTestPresenter()
	p.ReportExecution(domain.ExecutionResult{Err: errors.New("fork failed")})
	if !strings.Contains(errOut.String(), "could not run") {
		t.Fatalf("stderr = %q", errOut.String())
	}
}
