// Package errors provides error handling conventions for the blue CLI.
//
// This package defines sentinel errors for the failure conditions blue can
// hit while bootstrapping itself or checking a workspace, an ExitError type
// for CLI exit code handling, and exit code constants.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [errors.Is]. Lower layers attach a sentinel to the underlying
// cause with [Mark], so both remain visible in the chain:
//
//	err := blueerrors.Mark(osErr, blueerrors.ErrCopyFailed)
//	errors.Is(err, blueerrors.ErrCopyFailed) // true
//	errors.Is(err, fs.ErrPermission)         // true if osErr was EACCES
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitFailure (1): The command failed (I/O, missing config, unmet requirements)
//   - ExitUsage (2): The command line itself was invalid
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. Only the entry point turns an ExitError into a process exit:
//
//	var exitErr *blueerrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
