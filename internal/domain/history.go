package domain

import "time"

// HistoryRecord captures one suggestion cycle for the audit store.
type HistoryRecord struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Invocation string    `json:"invocation"`
	Command    string    `json:"command"`
	Verdict    string    `json:"verdict"`
	Reason     string    `json:"reason,omitempty"`
	Executed   bool      `json:"executed"`
	ExitCode   int       `json:"exit_code"`
	DurationMS int64     `json:"duration_ms"`
	Provider   string    `json:"provider"`
	Model      string    `json:"model"`
}
