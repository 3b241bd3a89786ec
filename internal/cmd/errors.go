package cmd

import (
	"errors"

	perrors "github.com/promptlib/cli/internal/errors"
	"github.com/promptlib/cli/internal/output"
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitGeneralError
}

// reportError prints err through the logger with its hint when one is set.
// A usage error's message replaces msg.
func reportError(msg string, err error) {
	var detail *perrors.DetailError
	if errors.As(err, &detail) && errors.Is(err, perrors.ErrUsage) {
		msg = detail.Message
	}
	output.Error(msg, detailKeyvals(err)...)
}

// detailKeyvals splits err into log key/value pairs. The path is logged once
// under "path" and left out of "error".
func detailKeyvals(err error) []interface{} {
	var detail *perrors.DetailError
	if !errors.As(err, &detail) {
		return []interface{}{"error", err}
	}

	keyvals := []interface{}{}
	if detail.Location != "" {
		keyvals = append(keyvals, "path", detail.Location)
	}
	if !errors.Is(err, perrors.ErrUsage) {
		keyvals = append(keyvals, "error", detail.Type+": "+detail.Message)
	}
	if detail.Hint != "" {
		keyvals = append(keyvals, "hint", detail.Hint)
	}
	return keyvals
}
