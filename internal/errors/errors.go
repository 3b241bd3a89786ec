// Package errors provides sentinel errors and structured error details for
// the promptlib CLI.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// DetailError captures structured error information.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory path involved (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString(e.Type)
	if e.Location != "" {
		b.WriteString(" (")
		b.WriteString(e.Location)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewNotTextError creates an error for files that cannot be decoded as text.
func NewNotTextError(location string) error {
	return &DetailError{
		Type:     "invalid encoding",
		Message:  "file is not valid UTF-8 text",
		Location: location,
		Cause:    ErrNotText,
	}
}

// NewUsageError creates a usage error for a missing or invalid argument.
func NewUsageError(message, hint string) error {
	return &DetailError{
		Type:    "usage",
		Message: message,
		Hint:    hint,
		Cause:   ErrUsage,
	}
}

// Classify converts a filesystem error into a DetailError wrapping the
// matching sentinel. Errors that are already classified are returned as-is.
// Unknown errors are wrapped with the location for context.
func Classify(err error, location string) error {
	if err == nil {
		return nil
	}

	var detail *DetailError
	if errors.As(err, &detail) {
		return err
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &DetailError{
			Type:     "not found",
			Message:  "no such file or directory",
			Location: location,
			Cause:    fmt.Errorf("%w: %w", ErrNotFound, err),
		}
	case errors.Is(err, fs.ErrPermission):
		return &DetailError{
			Type:     "permission denied",
			Message:  "check the file permissions",
			Location: location,
			Cause:    fmt.Errorf("%w: %w", ErrPermission, err),
		}
	default:
		return Wrap(err, location)
	}
}

// Hint returns the hint carried by err, if any.
func Hint(err error) string {
	var detail *DetailError
	if errors.As(err, &detail) {
		return detail.Hint
	}
	return ""
}

// Wrap wraps an error with a message.
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}
