package domain

// Exit codes at the process boundary. ExitCommandNotFound is load-bearing for
// shell integration: it tells the calling shell the original command really
// was unresolved, even when a suggestion ran.
const (
	ExitOK              = 0
	ExitFailure         = 1
	ExitCommandNotFound = 127
)

// Outcome summarizes one completed suggestion cycle for the CLI layer.
type Outcome struct {
	ExitCode   int
	Suggestion Suggestion
	Assessment SafetyAssessment
	Execution  *ExecutionResult
}
