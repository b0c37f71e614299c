package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for state directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for the credentials file (rw-------)
	SecureFilePermissions = 0o600
)

// Timeout and duration constants
const (
	// DefaultRequestTimeout bounds the single outbound completion request.
	// The upstream script had no timeout at all; a hung endpoint hung the
	// whole hook, so the request is bounded here.
	DefaultRequestTimeout = 60 * time.Second
)

// History constants
const (
	// DefaultHistoryLimit is the default number of history records to display
	DefaultHistoryLimit = 20
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)
