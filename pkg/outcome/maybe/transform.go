package maybe

import "github.com/ib-77/outcome/pkg/outcome"

// Map transforms the success value into a new success value; None and Fail
// are forwarded with their identity preserved.
func Map[In, Out any](in Maybe[In], onSuccess func(In) Out) Maybe[Out] {
	if onSuccess == nil {
		panic(outcome.ErrNilTransform)
	}
	if in.IsSuccess() {
		return Success(onSuccess(in.value))
	}
	return forward[In, Out](in)
}

// Bind composes a function that itself returns a Maybe; None and Fail are
// forwarded with their identity preserved.
func Bind[In, Out any](in Maybe[In], onSuccess func(In) Maybe[Out]) Maybe[Out] {
	if onSuccess == nil {
		panic(outcome.ErrNilTransform)
	}
	if in.IsSuccess() {
		return onSuccess(in.value)
	}
	return forward[In, Out](in)
}

// Try composes a function in the (value, error) convention: a non-nil error
// becomes a Fail carrying the adapted outcome.Error.
func Try[In, Out any](in Maybe[In], onSuccess func(In) (Out, error)) Maybe[Out] {
	if onSuccess == nil {
		panic(outcome.ErrNilTransform)
	}
	if !in.IsSuccess() {
		return forward[In, Out](in)
	}
	out, err := onSuccess(in.value)
	if err != nil {
		e := outcome.FromError(err)
		return Fail[Out](&e)
	}
	return Success(out)
}

// Ensure triggers side effects for the current state and returns the input
// unchanged. Nil handlers are skipped.
func Ensure[T any](in Maybe[T], onSuccess func(T), onNone func(), onFail func(outcome.Error)) Maybe[T] {
	switch in.state {
	case outcome.StateSuccess:
		if onSuccess != nil {
			onSuccess(in.value)
		}
	case outcome.StateNone:
		if onNone != nil {
			onNone()
		}
	case outcome.StateFail:
		if onFail != nil {
			onFail(in.err)
		}
	}
	return in
}

// Match reduces the value to a concrete result by applying the handler
// matching the current state. All three handlers are required.
func Match[In, Out any](in Maybe[In], onSuccess func(In) Out, onNone func() Out, onFail func(outcome.Error) Out) Out {
	if onSuccess == nil || onNone == nil || onFail == nil {
		panic(outcome.ErrNilTransform)
	}
	switch in.state {
	case outcome.StateSuccess:
		return onSuccess(in.value)
	case outcome.StateNone:
		return onNone()
	default:
		return onFail(in.Err())
	}
}
