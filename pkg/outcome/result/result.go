package result

import (
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/outcome/pkg/outcome"
)

// Result models the outcome of an operation with no success payload: it is
// either Success or Fail with an outcome.Error. Values are immutable after
// construction; every transformation returns a new value.
type Result struct {
	id        uuid.UUID
	createdAt time.Time
	err       outcome.Error
	state     outcome.State
}

func Success() Result {
	return Result{
		state:     outcome.StateSuccess,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail returns a Fail result. A nil err is replaced by outcome.DefaultError,
// so a Fail never lacks a reason.
func Fail(err *outcome.Error) Result {
	return Result{
		err:       outcome.OrDefault(err),
		state:     outcome.StateFail,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (r Result) State() outcome.State {
	return r.state
}

func (r Result) IsSuccess() bool {
	return r.state == outcome.StateSuccess
}

func (r Result) IsFail() bool {
	return r.state == outcome.StateFail
}

// Err returns the failure description. It panics with *outcome.AccessError
// when the result is not Fail.
func (r Result) Err() outcome.Error {
	if r.state != outcome.StateFail {
		panic(&outcome.AccessError{Op: "Err", State: r.state})
	}
	return r.err
}

// Id returns the creation identity stamped on the value. Passthrough
// combinators preserve it.
func (r Result) Id() uuid.UUID {
	return r.id
}

// CreatedAt time creation (UTC)
func (r Result) CreatedAt() time.Time {
	return r.createdAt
}

// WithError replaces the failure description of a Fail result with
// transform(err); any other state passes through untouched. A nil transform
// panics with outcome.ErrNilTransform before the state is inspected.
func (r Result) WithError(transform func(outcome.Error) outcome.Error) Result {
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

// Match reduces the result to a value by applying the handler matching the
// current state. Both handlers are required.
func Match[Out any](r Result, onSuccess func() Out, onFail func(outcome.Error) Out) Out {
	if onSuccess == nil || onFail == nil {
		panic(outcome.ErrNilTransform)
	}
	if r.IsSuccess() {
		return onSuccess()
	}
	return onFail(r.Err())
}
