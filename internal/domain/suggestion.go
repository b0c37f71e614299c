package domain

// Suggestion is the parsed form of a model reply. Command is empty when the
// reply contained no recognizable command line.
type Suggestion struct {
	Explanation string
	Command     string
}

// HasCommand reports whether the reply carried a runnable candidate.
func (s Suggestion) HasCommand() bool {
	return s.Command != ""
}

// Verdict enumerates safety classification outcomes.
type Verdict string

const (
	VerdictSafe   Verdict = "safe"
	VerdictUnsafe Verdict = "unsafe"
)

// SafetyAssessment is the classifier's decision about one command string.
// Reason is set only for unsafe verdicts.
type SafetyAssessment struct {
	Verdict Verdict
	Reason  string
}

// ExecutionResult wraps details from the command executor.
type ExecutionResult struct {
	Ran        bool
	ExitCode   int
	DurationMS int64
	Err        error
}
