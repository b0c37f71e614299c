package security

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sleepystudio/terminai/internal/domain"
)

func newTestDenylist(t *testing.T) *Denylist {
	t.Helper()
	denylist, err := NewDenylist(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("NewDenylist error: %v", err)
	}
	return denylist
}

func TestClassifyUnsafeSubstrings(t *testing.T) {
	denylist := newTestDenylist(t)

	unsafe := []string{
		"rm -rf /",
		"sudo apt install foo",
		"rm file.txt",
		"dd if=/dev/zero of=/dev/sda",
		"mkfs.ext4 /dev/sdb1",
		"sudo rm -rf /",
	}
	for _, command := range unsafe {
		if got := denylist.Classify(command); got.Verdict != domain.VerdictUnsafe {
			t.Errorf("Classify(%q) = %+v, want unsafe", command, got)
		}
	}
}

func TestClassifySafeCommands(t *testing.T) {
	denylist := newTestDenylist(t)

	safe := []string{
		"git status",
		"ls -la",
		"echo hello",
		"rmdir empty",
	}
	for _, command := range safe {
		if got := denylist.Classify(command); got.Verdict != domain.VerdictSafe {
			t.Errorf("Classify(%q) = %+v, want safe", command, got)
		}
	}
}

// The matching is substring-based on purpose: anything containing "sudo" is
// refused, even when it is not an invocation of sudo.
func TestClassifyNaiveSubstringContract(t *testing.T) {
	denylist := newTestDenylist(t)

	if got := denylist.Classify("grep sudo-log"); got.Verdict != domain.VerdictUnsafe {
		t.Fatalf("Classify(grep sudo-log) = %+v, want unsafe", got)
	}
	// Reordered flags slip through; the denylist only knows the literal form.
	if got := denylist.Classify("rm -fr"); got.Verdict != domain.VerdictSafe {
		t.Fatalf("Classify(rm -fr) = %+v, want safe under the literal contract", got)
	}
}

func TestClassifyUnsafeCarriesReason(t *testing.T) {
	denylist := newTestDenylist(t)

	got := denylist.Classify("sudo reboot")
	if got.Reason == "" {
		t.Fatal("expected a reason on unsafe verdict")
	}
}

func TestRulesFileAppendsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "denylist.yaml")
	rules := `rules:
  unsafe_substrings:
    - substring: "shutdown"
      reason: "powers off the machine"
`
	if err := os.WriteFile(path, []byte(rules), 0o644); err != nil {
		t.Fatalf("write rules: %v", err)
	}

	denylist, err := NewDenylist(path)
	if err != nil {
		t.Fatalf("NewDenylist error: %v", err)
	}

	if got := denylist.Classify("shutdown -h now"); got.Verdict != domain.VerdictUnsafe {
		t.Fatalf("Classify(shutdown) = %+v, want unsafe from rules file", got)
	}
	// Built-ins stay active regardless of the rules file.
	if got := denylist.Classify("sudo true"); got.Verdict != domain.VerdictUnsafe {
		t.Fatalf("Classify(sudo true) = %+v, want unsafe from built-ins", got)
	}
}

func TestRulesFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "denylist.yaml")
	if err := os.WriteFile(path, []byte("rules: [unclosed"), 0o644); err != nil {
		t.Fatalf("write rules: %v", err)
	}
	if _, err := NewDenylist(path); err == nil {
		t.Fatal("expected error for unparsable rules file")
	}
}
