// Package errors wraps the standard errors package and pkg/errors so callers
// import a single package for matching and for stack-carrying wraps.
package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// New creates a plain sentinel error without a stack.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether err or anything it wraps matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As assigns the first error in the chain assignable to target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Wrap records a stack trace and prefixes err with message.
// A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// WithStack records a stack trace without changing the message.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// StackTrace returns the innermost recorded stack, one frame per line,
// or an empty string when err carries none.
func StackTrace(err error) string {
	type tracer interface {
		StackTrace() pkgerrors.StackTrace
	}

	var deepest tracer
	for e := err; e != nil; e = stderrors.Unwrap(e) {
		if t, ok := e.(tracer); ok {
			deepest = t
		}
	}
	if deepest == nil {
		return ""
	}

	return fmt.Sprintf("%+v", deepest.StackTrace())
}
