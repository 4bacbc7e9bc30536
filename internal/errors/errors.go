// Package errors wraps stdlib errors and pkg/errors behind one import,
// and marks failures that a later attempt of the same alert run may overcome.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns an error that formats as the given text.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Wrap returns an error annotating err with a stack trace and the supplied message.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf returns an error annotating err with a stack trace and the format specifier.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack annotates err with a stack trace at the point WithStack was called.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf formats according to a format specifier and returns an error with a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// retryableError marks a run failure that happened before any notification was sent.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return "retryable: " + e.err.Error()
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// Retryable marks err as safe to retry. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}

	return &retryableError{err: err}
}

// IsRetryable reports whether err, or anything it wraps, was marked by Retryable.
func IsRetryable(err error) bool {
	var re *retryableError

	return stderrors.As(err, &re)
}
