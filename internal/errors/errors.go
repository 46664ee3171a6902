// Package errors is the single import for error handling: stdlib matching plus
// pkg/errors stack traces on every wrap.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns a sentinel without a stack; wrap it at the failure site instead.
func New(text string) error { return stderrors.New(text) }

func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }

// Wrap adds message and a stack trace. It returns nil for a nil err.
func Wrap(err error, message string) error { return pkgerrors.Wrap(err, message) }

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error { return pkgerrors.WithStack(err) }

// Errorf builds a new error that carries a stack trace.
func Errorf(format string, args ...any) error { return pkgerrors.Errorf(format, args...) }
