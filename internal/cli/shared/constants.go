// Package shared provides constants and helpers used across CLI subpackages.
package shared

import "fmt"

// Command group IDs for help output.
const (
	GroupGettingStarted = "getting-started"
	GroupRelease        = "release"
	GroupCommits        = "commits"
	GroupMigration      = "migration"
	GroupConfiguration  = "configuration"
)

// Exit codes for the semrel CLI.
// These codes support programmatic composition and CI/CD integration.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitValidationFailed indicates a lint or validation failure
	ExitValidationFailed = 1

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3

	// ExitMissingDependency indicates required tools or files are missing
	ExitMissingDependency = 4

	// ExitReleaseFailed indicates a release pipeline step failed
	ExitReleaseFailed = 6
)

// ExitError carries a process exit code through cobra's error return.
// Err, when set, is reported before exiting; a nil Err means the command
// already printed its own output.
type ExitError struct {
	Code int
	Err  error
}

// NewExitError returns a silent exit error with the given code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

// WithExitCode attaches an exit code to err.
func WithExitCode(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
