// Package filesystem holds small path helpers shared by the loaders.
package filesystem

import "os"

// UserHomeDir returns the current user's home directory, falling back to "."
// when it cannot be determined so per-user paths still resolve somewhere.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}
