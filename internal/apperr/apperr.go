// Package apperr defines the error type shared by stepsquad packages
package apperr

import (
	"errors"
	"fmt"
)

// Error represents an application error with a user facing message and an
// optional underlying cause.
type Error struct {
	Cause   error
	Context any
	Message string
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target carries the same message template as e. It lets
// formatted and wrapped copies match their package level sentinel.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.Message == e.Message || t.Message == e.template()
}

// Fmt returns a copy of the error with its message formatted using the
// provided arguments.
func (e *Error) Fmt(a ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, a...),
		Cause:   e.Cause,
		Context: e.Message,
	}
}

// Wrap returns a copy of the error that wraps err.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Cause:   err,
		Context: e.Context,
	}
}

func (e *Error) template() string {
	if s, ok := e.Context.(string); ok {
		return s
	}

	return e.Message
}
