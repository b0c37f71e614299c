package cli

import "fmt"

// ExitCodeError carries a deliberate process exit code out of cobra's RunE
// chain. The suggestion path must end with 127 even on success, which a plain
// nil return cannot express.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// exitWithCode converts an outcome exit code into the error cobra hands back
// to main. Zero maps to nil so ordinary success stays ordinary.
func exitWithCode(code int) error {
	if code == 0 {
		return nil
	}
	return &ExitCodeError{Code: code}
}
