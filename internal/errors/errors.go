package errors

import (
	"errors"
	"fmt"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates the command failed.
	ExitFailure = 1

	// ExitUsage indicates the command line was invalid.
	ExitUsage = 2
)

// Sentinel errors raised while bootstrapping the blue binary.
var (
	// ErrUnsupportedPlatform indicates the host operating system has no install strategy.
	ErrUnsupportedPlatform = errors.New("unsupported operating system")

	// ErrHomeDirUnavailable indicates the user's home directory could not be determined.
	ErrHomeDirUnavailable = errors.New("home directory unavailable")

	// ErrDirCreateFailed indicates the install directory could not be created.
	ErrDirCreateFailed = errors.New("failed to create install directory")

	// ErrSelfPathUnavailable indicates the running executable could not locate itself.
	ErrSelfPathUnavailable = errors.New("executable path unavailable")

	// ErrCopyFailed indicates the executable could not be copied to the install directory.
	ErrCopyFailed = errors.New("failed to copy binary")

	// ErrProfileOpenFailed indicates the shell profile could not be opened or read.
	ErrProfileOpenFailed = errors.New("failed to open shell profile")

	// ErrProfileWriteFailed indicates the PATH export could not be appended to the shell profile.
	ErrProfileWriteFailed = errors.New("failed to write shell profile")

	// ErrPathMechanismFailed indicates the Windows user PATH update could not be run.
	// It is the only non-fatal bootstrap error.
	ErrPathMechanismFailed = errors.New("failed to update user PATH")
)

// Sentinel errors for workspace handling.
var (
	// ErrNotFound indicates the requested resource was not found.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidConfig indicates configuration parsing or validation failed.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrRequirementsUnmet indicates at least one workspace requirement failed.
	ErrRequirementsUnmet = errors.New("workspace requirements not met")
)

// ExitError wraps an error with an exit code and optional suggestion for CLI applications.
// It implements the error interface and supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
// If err is nil, the returned ExitError will have a nil Err field.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewExitErrorWithSuggestion creates an ExitError with a suggestion.
func NewExitErrorWithSuggestion(err error, code int, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       code,
		Suggestion: suggestion,
	}
}

// NewFailure creates an ExitError with ExitFailure code and a suggestion.
func NewFailure(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitFailure,
		Suggestion: suggestion,
	}
}

// NewUsageError creates an ExitError with ExitUsage code and a suggestion.
func NewUsageError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUsage,
		Suggestion: suggestion,
	}
}

// NewConfigError creates an ExitError with ExitFailure code and a standard suggestion.
func NewConfigError(err error) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitFailure,
		Suggestion: "Check blue.toml for syntax errors",
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// Code extracts the exit code carried by err.
// Nil maps to ExitSuccess and errors without an ExitError map to ExitFailure.
func Code(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
