// Package suggest orchestrates one command-not-found suggestion cycle.
package suggest

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/google/uuid"

	"github.com/sleepystudio/terminai/internal/domain"
	"github.com/sleepystudio/terminai/internal/ports"
)

// Service composes the suggestion pipeline: prompt construction, remote call,
// reply parsing, safety gate, optional execution. One Handle call per process;
// nothing survives the cycle except the audit record.
type Service struct {
	ConfigProvider  ports.ConfigProvider
	PersonaProvider ports.PersonaProvider
	Client          ports.CompletionClient
	Parser          ports.ReplyParser
	Classifier      ports.SafetyClassifier
	Executor        ports.CommandExecutor
	Presenter       ports.Presenter
	History         ports.HistoryRepository
	Logger          ports.Logger

	// LookPath resolves a binary on PATH; overridable in tests.
	// A resolvable first token means the hook fired spuriously.
	LookPath func(file string) (string, error)

	// RequestTimeout bounds the completion request only. The executed
	// command is never subject to it: the cycle waits for the subprocess
	// however long it takes.
	RequestTimeout time.Duration
}

// Handle processes one failed invocation and returns the exit code the
// process must terminate with. Fatal errors (configuration, provider,
// network) are returned instead and map to exit 1 at the boundary; every
// completed cycle exits 127 so the shell still sees "command not found".
func (s *Service) Handle(ctx context.Context, inv domain.Invocation) (domain.Outcome, error) {
	if s.ConfigProvider == nil || s.PersonaProvider == nil || s.Client == nil ||
		s.Parser == nil || s.Classifier == nil || s.Executor == nil || s.Presenter == nil || s.Logger == nil {
		return domain.Outcome{}, errors.New("suggest.Service dependencies not satisfied")
	}

	if inv.Empty() {
		s.Presenter.Notify("No command provided.")
		return domain.Outcome{ExitCode: domain.ExitOK}, nil
	}

	if path, err := s.lookPath(inv.Tokens[0]); err == nil {
		s.Presenter.Notify(fmt.Sprintf("Command %q exists at %s; nothing to suggest.", inv.Tokens[0], path))
		return domain.Outcome{ExitCode: domain.ExitOK}, nil
	}

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.Outcome{}, fmt.Errorf("load config: %w", err)
	}
	persona := s.PersonaProvider.Load(ctx)

	callCtx := ctx
	if s.RequestTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.RequestTimeout)
		defer cancel()
	}

	start := time.Now()
	reply, err := s.Client.Complete(callCtx, cfg, SystemPrompt(persona), UserPrompt(inv))
	if err != nil {
		return domain.Outcome{}, fmt.Errorf("query completion: %w", err)
	}
	s.Logger.Debug("completion received", map[string]interface{}{
		"provider":    cfg.Provider,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	suggestion := s.Parser.Parse(reply)
	s.Presenter.ShowExplanation(suggestion.Explanation)

	outcome := domain.Outcome{
		ExitCode:   domain.ExitCommandNotFound,
		Suggestion: suggestion,
	}

	if suggestion.HasCommand() {
		outcome.Assessment = s.Classifier.Classify(suggestion.Command)
		if outcome.Assessment.Verdict == domain.VerdictUnsafe {
			s.Presenter.WarnUnsafe(suggestion.Command, outcome.Assessment.Reason)
		} else {
			result, err := s.Executor.Execute(ctx, suggestion.Command)
			if err != nil {
				s.Logger.Warn("execution failed to start", map[string]interface{}{
					"command": suggestion.Command,
					"error":   err.Error(),
				})
			}
			outcome.Execution = &result
			s.Presenter.ReportExecution(result)
		}
	}

	s.record(cfg, inv, outcome, time.Since(start))
	return outcome, nil
}

func (s *Service) lookPath(file string) (string, error) {
	if s.LookPath != nil {
		return s.LookPath(file)
	}
	return exec.LookPath(file)
}

// record appends the cycle to the audit store. Best-effort only.
func (s *Service) record(cfg domain.Config, inv domain.Invocation, outcome domain.Outcome, elapsed time.Duration) {
	if s.History == nil {
		return
	}
	rec := domain.HistoryRecord{
		ID:         uuid.NewString(),
		Timestamp:  time.Now(),
		Invocation: inv.CommandLine(),
		Command:    outcome.Suggestion.Command,
		Verdict:    string(outcome.Assessment.Verdict),
		Reason:     outcome.Assessment.Reason,
		DurationMS: elapsed.Milliseconds(),
		Provider:   string(cfg.Provider),
		Model:      cfg.Model,
	}
	if outcome.Execution != nil {
		rec.Executed = outcome.Execution.Ran
		rec.ExitCode = outcome.Execution.ExitCode
	}
	if err := s.History.Save(rec); err != nil {
		s.Logger.Warn("history save failed", map[string]interface{}{"error": err.Error()})
	}
}
