package typed

import (
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/outcome/pkg/outcome"
)

// Result models the outcome of an operation that yields a value of type T:
// either Success carrying the value or Fail carrying an outcome.Error.
// Exactly one of the two payloads is meaningful, guarded by the state.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       outcome.Error
	state     outcome.State
}

func Success[T any](value T) Result[T] {
	return Result[T]{
		value:     value,
		state:     outcome.StateSuccess,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail returns a Fail result. A nil err is replaced by outcome.DefaultError,
// so a Fail never lacks a reason.
func Fail[T any](err *outcome.Error) Result[T] {
	return Result[T]{
		err:       outcome.OrDefault(err),
		state:     outcome.StateFail,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// forward carries a non-success result across a type change, preserving its
// identity and creation time.
func forward[In, Out any](in Result[In]) Result[Out] {
	return Result[Out]{
		err:       in.err,
		state:     in.state,
		createdAt: in.createdAt,
		id:        in.id,
	}
}

func (r Result[T]) State() outcome.State {
	return r.state
}

func (r Result[T]) IsSuccess() bool {
	return r.state == outcome.StateSuccess
}

func (r Result[T]) IsFail() bool {
	return r.state == outcome.StateFail
}

// Value returns the success payload. It panics with *outcome.AccessError
// when the result is not Success.
func (r Result[T]) Value() T {
	if r.state != outcome.StateSuccess {
		panic(&outcome.AccessError{Op: "Value", State: r.state})
	}
	return r.value
}

// Err returns the failure description. It panics with *outcome.AccessError
// when the result is not Fail.
func (r Result[T]) Err() outcome.Error {
	if r.state != outcome.StateFail {
		panic(&outcome.AccessError{Op: "Err", State: r.state})
	}
	return r.err
}

// Id returns the creation identity stamped on the value. Passthrough
// combinators preserve it.
func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// CreatedAt time creation (UTC)
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// WithError replaces the failure description of a Fail result with
// transform(err); any other state passes through untouched. A nil transform
// panics with outcome.ErrNilTransform before the state is inspected.
func (r Result[T]) WithError(transform func(outcome.Error) outcome.Error) Result[T] {
	if transform == nil {
		panic(outcome.ErrNilTransform)
	}
	if r.state != outcome.StateFail {
		return r
	}
	next := r
	next.err = transform(r.err)
	return next
}
