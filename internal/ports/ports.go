// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). The suggestion orchestrator depends only on these
// abstractions; concrete implementations (HTTP client, YAML loaders, SQLite
// store, console presenter) live in the infrastructure layer.
package ports

import (
	"context"

	"github.com/sleepystudio/terminai/internal/domain"
)

// ConfigProvider loads the credentials snapshot from persistent storage.
// Implementations typically read from ~/.terminai/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// PersonaProvider loads the optional personality snapshot. A missing or
// unparsable persona file yields the zero value, never an error.
type PersonaProvider interface {
	Load(context.Context) domain.Personality
}

// CompletionClient issues exactly one chat-completion request and returns the
// first choice's message text. The system prompt always precedes the user
// prompt on the wire. No retries, no caching.
type CompletionClient interface {
	Complete(ctx context.Context, cfg domain.Config, systemPrompt, userPrompt string) (string, error)
}

// ReplyParser splits a raw model reply into explanation and optional command.
// Total: malformed output degrades, it never fails.
type ReplyParser interface {
	Parse(reply string) domain.Suggestion
}

// SafetyClassifier decides whether a candidate command is safe to auto-run.
// Pure function of the command string.
type SafetyClassifier interface {
	Classify(command string) domain.SafetyAssessment
}

// CommandExecutor runs a vetted command through a shell-interpreted
// subprocess, inheriting the standard streams.
type CommandExecutor interface {
	Execute(ctx context.Context, command string) (domain.ExecutionResult, error)
}

// HistoryRepository persists suggestion cycles for auditing. Best-effort:
// callers must treat failures as non-fatal.
type HistoryRepository interface {
	Save(record domain.HistoryRecord) error
	Records(limit int) ([]domain.HistoryRecord, error)
	Clear() error
}

// Presenter is the orchestrator's view of the console. Keeping it behind a
// port preserves the display order (explanation before any execution output)
// while tests substitute a recorder.
type Presenter interface {
	ShowExplanation(text string)
	WarnUnsafe(command, reason string)
	ReportExecution(result domain.ExecutionResult)
	Notify(msg string)
}

// Logger provides diagnostic logging for the application layer. User-facing
// output goes through the Presenter, never the Logger.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
