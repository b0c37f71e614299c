package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/sleepystudio/terminai/internal/domain"
	"github.com/sleepystudio/terminai/internal/ports"
)

const (
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiReset  = "\x1b[0m"
)

// ConsolePresenter implements the Presenter port on the process streams.
// Explanations go to stdout; warnings and exit-code reports go to stderr so
// they survive output redirection of the suggested command.
type ConsolePresenter struct {
	out    io.Writer
	errOut io.Writer
	color  bool
}

// NewConsolePresenter builds a presenter bound to stdout/stderr, with ANSI
// color only when stderr is a terminal.
func NewConsolePresenter() *ConsolePresenter {
	return &ConsolePresenter{
		out:    os.Stdout,
		errOut: os.Stderr,
		color:  isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()),
	}
}

// ShowExplanation prints the model's explanation, always, before any
// execution output.
func (p *ConsolePresenter) ShowExplanation(text string) {
	fmt.Fprintln(p.out, text)
}

// WarnUnsafe names the refused command and the denylist reason.
func (p *ConsolePresenter) WarnUnsafe(command, reason string) {
	fmt.Fprintf(p.errOut, "%sRefusing to run %q: %s%s\n", p.paint(ansiRed), command, reason, p.paint(ansiReset))
}

// ReportExecution reports a non-zero exit of the suggested command. The
// report is informational; the process exit code is unaffected.
func (p *ConsolePresenter) ReportExecution(result domain.ExecutionResult) {
	if result.Err != nil {
		if result.Ran {
			fmt.Fprintf(p.errOut, "%sSuggested command was interrupted: %v%s\n", p.paint(ansiYellow), result.Err, p.paint(ansiReset))
			return
		}
		fmt.Fprintf(p.errOut, "%sSuggested command could not run: %v%s\n", p.paint(ansiYellow), result.Err, p.paint(ansiReset))
		return
	}
	if result.ExitCode != 0 {
		fmt.Fprintf(p.errOut, "%sSuggested command exited with code %d%s\n", p.paint(ansiYellow), result.ExitCode, p.paint(ansiReset))
	}
}

// Notify prints a short status line.
func (p *ConsolePresenter) Notify(msg string) {
	fmt.Fprintln(p.out, msg)
}

func (p *ConsolePresenter) paint(code string) string {
	if !p.color {
		return ""
	}
	return code
}

var _ ports.Presenter = (*ConsolePresenter)(nil)
