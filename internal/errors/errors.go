package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess           = 0   // Indicates successful execution.
	ExitErrorGeneric      = 1   // Indicates a generic error.
	ExitErrorConfig       = 4   // Indicates a configuration or input error.
	ExitErrorToolNotFound = 127 // Indicates the external linter could not be found.
	ExitErrorCanceled     = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid arguments
// or values. It indicates that the application cannot proceed due to incorrect
// user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// DirectoryError reports a target directory that is missing or cannot be read.
// It is fatal and raised before any linter process is started.
type DirectoryError struct {
	// Path is the directory that could not be used.
	Path string
	// Cause is the underlying filesystem error.
	Cause error
}

// Error returns a formatted message describing the unreadable directory.
func (e DirectoryError) Error() string {
	return fmt.Sprintf("cannot read directory %q: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying filesystem error.
func (e DirectoryError) Unwrap() error { return e.Cause }

// ToolNotFoundError reports that the external linter binary is not available
// in the execution environment. It aborts the whole run.
type ToolNotFoundError struct {
	// Tool is the command name or path that was looked up.
	Tool string
	// Cause is the lookup error, usually exec.ErrNotFound.
	Cause error
}

// Error returns a formatted message naming the missing tool.
func (e ToolNotFoundError) Error() string {
	return fmt.Sprintf("linter %q not found: %v", e.Tool, e.Cause)
}

// Unwrap returns the lookup error.
func (e ToolNotFoundError) Unwrap() error { return e.Cause }

// SubprocessError describes a linter process that crashed, was killed, or
// could not be started for a reason other than a missing binary. It is
// recorded as feedback for the file and never aborts a run.
type SubprocessError struct {
	// Path is the file being checked.
	Path string
	// Cause is the process error.
	Cause error
}

// Error returns a formatted message describing the failed invocation.
func (e SubprocessError) Error() string {
	return fmt.Sprintf("linter invocation for %q failed: %v", e.Path, e.Cause)
}

// Unwrap returns the process error.
func (e SubprocessError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error returned by a run to the process exit code.
// A nil error maps to ExitSuccess.
func ExitCodeFor(err error) int {
	var (
		configErr ConfigError
		dirErr    DirectoryError
		toolErr   ToolNotFoundError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &configErr), errors.As(err, &dirErr):
		return ExitErrorConfig
	case errors.As(err, &toolErr):
		return ExitErrorToolNotFound
	case IsContextError(err):
		return ExitErrorCanceled
	default:
		return ExitErrorGeneric
	}
}
