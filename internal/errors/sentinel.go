package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrNotFound indicates a template file or directory does not exist.
	ErrNotFound = errors.New("not found")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")

	// ErrNotText indicates a template file is not valid UTF-8 text.
	ErrNotText = errors.New("not valid UTF-8 text")

	// ErrUsage indicates a missing or invalid command-line argument.
	ErrUsage = errors.New("usage error")
)
