// Package security implements the auto-run safety gate.
package security

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sleepystudio/terminai/internal/domain"
	"github.com/sleepystudio/terminai/internal/pkg/filesystem"
	"github.com/sleepystudio/terminai/internal/ports"
)

// Denylist implements the SafetyClassifier port with plain substring
// matching. The matching is deliberately naive: "grep sudo-log" is flagged,
// "rm -fr" is not. That is the documented contract for what the gate catches,
// a false-positive-tolerant guard against catastrophic one-liners, not a
// sandbox. Do not tokenize.
type Denylist struct {
	entries []Entry
}

// Entry pairs an unsafe substring with the reason reported to the user.
type Entry struct {
	Substring string `yaml:"substring"`
	Reason    string `yaml:"reason"`
}

// RulesFile is the YAML schema root for ~/.terminai/denylist.yaml.
type RulesFile struct {
	Rules struct {
		UnsafeSubstrings []Entry `yaml:"unsafe_substrings"`
	} `yaml:"rules"`
}

// NewDenylist builds the classifier. The built-in entries are always active;
// a rules file at path (default ~/.terminai/denylist.yaml) may only append.
func NewDenylist(path string) (*Denylist, error) {
	extra, err := loadRules(path)
	if err != nil {
		return nil, err
	}
	return &Denylist{entries: append(builtinEntries(), extra...)}, nil
}

// Classify implements ports.SafetyClassifier. First matching entry wins.
func (d *Denylist) Classify(command string) domain.SafetyAssessment {
	for _, entry := range d.entries {
		if strings.Contains(command, entry.Substring) {
			return domain.SafetyAssessment{
				Verdict: domain.VerdictUnsafe,
				Reason:  entry.Reason,
			}
		}
	}
	return domain.SafetyAssessment{Verdict: domain.VerdictSafe}
}

func loadRules(path string) ([]Entry, error) {
	data, err := os.ReadFile(expandPath(path))
	if err != nil {
		// no rules file, built-ins only
		return nil, nil
	}
	var rules RulesFile
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, err
	}
	return rules.Rules.UnsafeSubstrings, nil
}

func expandPath(path string) string {
	if path == "" {
		return filepath.Join(filesystem.UserHomeDir(), ".terminai", "denylist.yaml")
	}
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

// builtinEntries is the fixed denylist. The trailing spaces on "rm " and
// "dd " are significant: they keep "rmdir" and "ddrescue-like" names from
// matching while still catching the bare tools.
func builtinEntries() []Entry {
	return []Entry{
		{Substring: "rm -rf", Reason: "recursive force delete"},
		{Substring: "sudo", Reason: "privilege escalation"},
		{Substring: "rm ", Reason: "file deletion"},
		{Substring: "dd ", Reason: "raw disk writing"},
		{Substring: "mkfs", Reason: "filesystem formatting"},
	}
}

var _ ports.SafetyClassifier = (*Denylist)(nil)
