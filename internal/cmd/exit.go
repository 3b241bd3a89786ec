// Package cmd provides command implementations for the promptlib CLI.
package cmd

// Exit codes. User-input mistakes (missing keyword or path) are reported
// and still exit with ExitSuccess.
const (
	// ExitSuccess indicates the command completed, including reported
	// user-input errors.
	ExitSuccess = 0

	// ExitGeneralError indicates an unexpected failure, such as a closed stdout.
	ExitGeneralError = 1
)
