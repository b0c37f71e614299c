package domain

import "strings"

// Invocation is the failed command line as delivered by the shell's
// command-not-found hook, plus the context it ran in. Built once per cycle,
// never mutated.
type Invocation struct {
	Tokens     []string
	WorkingDir string
	User       string
}

// CommandLine joins the raw tokens back into the line the user typed.
func (i Invocation) CommandLine() string {
	return strings.Join(i.Tokens, " ")
}

// Empty reports whether the hook delivered no tokens at all.
func (i Invocation) Empty() bool {
	return len(i.Tokens) == 0
}
