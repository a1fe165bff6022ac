package outcome

import (
	"errors"
	"fmt"
)

// Default content of an Error when the failure site supplies none. Both
// values are stable; callers may rely on them.
const (
	DefaultErrorMessage = "unspecified failure"
	DefaultErrorCode    = "unspecified"
)

// Error is an immutable description of a failure: a human-readable message,
// an optional machine-readable code, an optional cause and an optional
// diagnostic trace. Derivations copy; nothing mutates an existing value.
type Error struct {
	message string
	code    string
	cause   *Error
	trace   string
}

// DefaultError returns the documented default failure description.
func DefaultError() Error {
	return Error{message: DefaultErrorMessage, code: DefaultErrorCode}
}

// NewError builds an Error from a message. An empty message is replaced by
// DefaultErrorMessage so an Error never lacks one.
func NewError(message string) Error {
	if message == "" {
		message = DefaultErrorMessage
	}
	return Error{message: message}
}

func NewErrorf(format string, args ...any) Error {
	return NewError(fmt.Sprintf(format, args...))
}

// CodedError builds an Error carrying a machine-readable code.
func CodedError(message, code string) Error {
	e := NewError(message)
	e.code = code
	return e
}

// WrapError builds an Error caused by another Error.
func WrapError(message string, cause Error) Error {
	e := NewError(message)
	e.cause = &cause
	return e
}

// FromError adapts a plain Go error at the library boundary. A nil error
// yields the default Error, an Error value passes through unchanged, and a
// wrapped error becomes a cause chain.
func FromError(err error) Error {
	if err == nil {
		return DefaultError()
	}
	if e, ok := err.(Error); ok {
		return e
	}
	if cause := errors.Unwrap(err); cause != nil {
		return WrapError(err.Error(), FromError(cause))
	}
	return NewError(err.Error())
}

// OrDefault dereferences an optional Error, substituting the default when
// none is supplied.
func OrDefault(err *Error) Error {
	if err == nil {
		return DefaultError()
	}
	return *err
}

func (e Error) Message() string { return e.message }

func (e Error) Code() string { return e.code }

func (e Error) Trace() string { return e.trace }

// Cause returns the nested Error and whether one exists.
func (e Error) Cause() (Error, bool) {
	if e.cause == nil {
		return Error{}, false
	}
	return *e.cause, true
}

// Chain returns the error followed by its causes, outermost first.
func (e Error) Chain() []Error {
	chain := []Error{e}
	for c := e.cause; c != nil; c = c.cause {
		chain = append(chain, *c)
	}
	return chain
}

// WithMessage derives a new Error with a replaced message and an identical
// code, cause chain and trace. An empty message is replaced by the default.
func (e Error) WithMessage(message string) Error {
	if message == "" {
		message = DefaultErrorMessage
	}
	next := e
	next.message = message
	return next
}

// WithCode derives a new Error with a replaced code.
func (e Error) WithCode(code string) Error {
	next := e
	next.code = code
	return next
}

// WithTrace derives a new Error carrying diagnostic text. The trace is never
// part of the rendered message.
func (e Error) WithTrace(trace string) Error {
	next := e
	next.trace = trace
	return next
}

// Error implements the error interface. Only the message is rendered; the
// cause chain and trace are exposed through Chain and Trace for callers that
// explicitly ask for them.
func (e Error) Error() string { return e.message }

// Unwrap exposes the cause to errors.Is and errors.As.
func (e Error) Unwrap() error {
	if e.cause == nil {
		return nil
	}
	return *e.cause
}

// Equal compares two errors by value, including the full cause chain.
func (e Error) Equal(other Error) bool {
	if e.message != other.message || e.code != other.code || e.trace != other.trace {
		return false
	}
	switch {
	case e.cause == nil && other.cause == nil:
		return true
	case e.cause == nil || other.cause == nil:
		return false
	}
	return e.cause.Equal(*other.cause)
}
