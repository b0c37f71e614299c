package suggest

import (
	"fmt"
	"strings"

	"github.com/sleepystudio/terminai/internal/domain"
)

// SystemPrompt frames the model before the task prompt. Persona fields are
// embedded as-is; an uninitialized persona embeds empty strings.
func SystemPrompt(persona domain.Personality) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("You are %s, a terminal assistant. %s\n", persona.Name, persona.Description))
	builder.WriteString("You help users recover from mistyped or unknown shell commands. ")
	builder.WriteString("Never suggest destructive commands. Only suggest a command when you are confident it is what the user intended.")
	return builder.String()
}

// UserPrompt describes the failed invocation and pins the reply to the
// Explanation:/Command: line format the parser understands.
func UserPrompt(inv domain.Invocation) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("User %q in directory %q entered an unrecognized command:\n", inv.User, inv.WorkingDir))
	builder.WriteString(fmt.Sprintf("  %s\n\n", inv.CommandLine()))
	builder.WriteString("Respond with exactly two lines:\n")
	builder.WriteString("Explanation: <one short sentence on what went wrong or what was likely meant>\n")
	builder.WriteString("Command: <a single corrected shell command>\n")
	builder.WriteString("Omit the Command line entirely if no correction applies.")
	return builder.String()
}
