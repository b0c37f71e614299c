package ai

import (
	"strings"

	"github.com/sleepystudio/terminai/internal/domain"
	"github.com/sleepystudio/terminai/internal/ports"
)

// Line prefixes of the informal text protocol spoken with the model. The
// prompt asks for this shape but nothing enforces it, so parsing must degrade
// instead of failing.
const (
	explanationMarker = "Explanation: "
	commandMarker     = "Command: "
)

// ReplyParser implements the ReplyParser port for the two-line
// Explanation:/Command: reply format.
type ReplyParser struct{}

// NewReplyParser builds the line-prefix parser.
func NewReplyParser() *ReplyParser {
	return &ReplyParser{}
}

// Parse scans the reply line by line. The last Command: marker wins; an
// Explanation: marker replaces everything accumulated so far; any other line
// feeds the running explanation buffer. A reply with no markers degrades to
// "no command, explanation = whole reply".
func (p *ReplyParser) Parse(reply string) domain.Suggestion {
	var command string
	var explanation strings.Builder

	for _, line := range strings.Split(reply, "\n") {
		switch {
		case strings.HasPrefix(line, commandMarker):
			command = strings.TrimSpace(line[len(commandMarker):])
		case strings.HasPrefix(line, explanationMarker):
			explanation.Reset()
			explanation.WriteString(strings.TrimSpace(line[len(explanationMarker):]))
			explanation.WriteByte('\n')
		default:
			explanation.WriteString(line)
			explanation.WriteByte('\n')
		}
	}

	return domain.Suggestion{
		Explanation: strings.TrimSpace(explanation.String()),
		Command:     command,
	}
}

var _ ports.ReplyParser = (*ReplyParser)(nil)
