package domain

import (
	"errors"
	"fmt"
)

// ErrProviderUnsupported is returned before any network I/O when the
// configured api_provider is not one of the recognized literals.
var ErrProviderUnsupported = errors.New("unsupported api provider")

// ConfigError marks a missing or empty credential field. It is fatal and
// aborts the cycle before any suggestion logic runs.
type ConfigError struct {
	Field string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration: required field %q is missing or empty", e.Field)
}

// APIError marks a non-success response from the remote completion endpoint.
// Never retried.
type APIError struct {
	Provider   Provider
	StatusCode int
	Status     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, e.Status)
}
