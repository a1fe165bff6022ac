package maybe

import (
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/outcome/pkg/outcome"
)

// Maybe models the outcome of an operation that may yield a value, yield
// deliberately nothing, or fail: Success(value), None, or Fail(error). None
// is not an error; it carries neither payload.
type Maybe[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       outcome.Error
	state     outcome.State
}

func Success[T any](value T) Maybe[T] {
	return Maybe[T]{
		value:     value,
		state:     outcome.StateSuccess,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// None returns the deliberate-absence value. Reading either payload from it
// is a misuse, not a default.
func None[T any]() Maybe[T] {
	return Maybe[T]{
		state:     outcome.StateNone,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail returns a Fail value. A nil err is replaced by outcome.DefaultError,
// so a Fail never lacks a reason.
func Fail[T any](err *outcome.Error) Maybe[T] {
	return Maybe[T]{
		err:       outcome.OrDefault(err),
		state:     outcome.StateFail,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// forward carries a non-success value across a type change, preserving its
// identity and creation time. It covers both None and Fail.
func forward[In, Out any](in Maybe[In]) Maybe[Out] {
	return Maybe[Out]{
		err:       in.err,
		state:     in.state,
		createdAt: in.createdAt,
		id:        in.id,
	}
}

func (m Maybe[T]) State() outcome.State {
	return m.state
}

func (m Maybe[T]) IsSuccess() bool {
	return m.state == outcome.StateSuccess
}

func (m Maybe[T]) IsNone() bool {
	return m.state == outcome.StateNone
}

func (m Maybe[T]) IsFail() bool {
	return m.state == outcome.StateFail
}

// Value returns the success payload. It panics with *outcome.AccessError
// when the value is not Success.
func (m Maybe[T]) Value() T {
	if m.state != outcome.StateSuccess {
		panic(&outcome.AccessError{Op: "Value", State: m.state})
	}
	return m.value
}

// Err returns the failure description. It panics with *outcome.AccessError
// when the value is not Fail; in particular a None holds no Error.
func (m Maybe[T]) Err() outcome.Error {
	if m.state != outcome.StateFail {
		panic(&outcome.AccessError{Op: "Err", State: m.state})
	}
	return m.err
}

// Id returns the creation identity stamped on the value. Passthrough
// combinators preserve it.
func (m Maybe[T]) Id() uuid.UUID {
	return m.id
}

// CreatedAt time creation (UTC)
func (m Maybe[T]) CreatedAt() time.Time {
	return m.createdAt
}

// WithError replaces the failure description of a Fail value with
// transform(err); Success and None pass through untouched. A nil transform
// panics with outcome.ErrNilTransform before the state is inspected.
func (m Maybe[T]) WithError(transform func(outcome.Error) outcome.Error) Maybe[T] {
	if transform == nil {
		panic(outcome.ErrNilTransform)
	}
	if m.state != outcome.StateFail {
		return m
	}
	next := m
	next.err = transform(m.err)
	return next
}
