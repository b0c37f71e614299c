package ai

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sleepystudio/terminai/internal/domain"
)

func TestParseWellFormedReply(t *testing.T) {
	parser := NewReplyParser()

	got := parser.Parse("Explanation: Did you mean git?\nCommand: git status\n")
	want := domain.Suggestion{
		Explanation: "Did you mean git?",
		Command:     "git status",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseReplyWithoutCommand(t *testing.T) {
	parser := NewReplyParser()

	got := parser.Parse("That tool is not installed on this system.\nTry your package manager.")
	if got.HasCommand() {
		t.Fatalf("expected no command, got %q", got.Command)
	}
	want := "That tool is not installed on this system.\nTry your package manager."
	if got.Explanation != want {
		t.Fatalf("Explanation = %q, want %q", got.Explanation, want)
	}
}

func TestParseLastCommandWins(t *testing.T) {
	parser := NewReplyParser()

	got := parser.Parse("Command: git stats\nCommand: git status\n")
	if got.Command != "git status" {
		t.Fatalf("Command = %q, want the last occurrence", got.Command)
	}
}

func TestParseExplanationMarkerDiscardsEarlierLines(t *testing.T) {
	parser := NewReplyParser()

	got := parser.Parse("Some preamble the model added.\nExplanation: Did you mean git?\nCommand: git status")
	if got.Explanation != "Did you mean git?" {
		t.Fatalf("Explanation = %q, want marker line to replace the buffer", got.Explanation)
	}
}

func TestParsePlainLinesAfterMarkerAccumulate(t *testing.T) {
	parser := NewReplyParser()

	got := parser.Parse("Explanation: First.\nSecond line.")
	want := "First.\nSecond line."
	if got.Explanation != want {
		t.Fatalf("Explanation = %q, want %q", got.Explanation, want)
	}
}

func TestParseTrimsMarkerRemainders(t *testing.T) {
	parser := NewReplyParser()

	got := parser.Parse("Explanation:   spaced out  \nCommand:   git status  ")
	if got.Explanation != "spaced out" || got.Command != "git status" {
		t.Fatalf("expected trimmed fields, got %+v", got)
	}
}

func TestParseEmptyReply(t *testing.T) {
	parser := NewReplyParser()

	got := parser.Parse("")
	if got.Explanation != "" || got.HasCommand() {
		t.Fatalf("expected empty suggestion, got %+v", got)
	}
}
