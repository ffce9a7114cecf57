package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// New creates an error with a stack trace.
func New(msg string) error {
	return crdb.New(msg)
}

// Newf creates a formatted error with a stack trace.
func Newf(format string, args ...any) error {
	return crdb.Newf(format, args...)
}

// Wrap annotates err with msg. It returns nil when err is nil.
func Wrap(err error, msg string) error {
	return crdb.Wrap(err, msg)
}

// Wrapf annotates err with a formatted message. It returns nil when err is nil.
func Wrapf(err error, format string, args ...any) error {
	return crdb.Wrapf(err, format, args...)
}

// Mark attaches sentinel to err so errors.Is matches both the original
// cause and the sentinel.
func Mark(err error, sentinel error) error {
	return crdb.Mark(err, sentinel)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return crdb.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return crdb.As(err, target)
}
