package typed

import "github.com/ib-77/outcome/pkg/outcome"

// Map transforms the success value into a new success value; any other state
// is forwarded with its identity preserved.
func Map[In, Out any](in Result[In], onSuccess func(In) Out) Result[Out] {
	if onSuccess == nil {
		panic(outcome.ErrNilTransform)
	}
	if in.IsSuccess() {
		return Success(onSuccess(in.value))
	}
	return forward[In, Out](in)
}

// Bind composes a function that itself returns a Result; any other state is
// forwarded with its identity preserved.
func Bind[In, Out any](in Result[In], onSuccess func(In) Result[Out]) Result[Out] {
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
func Try[In, Out any](in Result[In], onSuccess func(In) (Out, error)) Result[Out] {
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

// Validate runs checks against the success value. Every failed check is
// accumulated; the result is a single Fail whose cause chain lists the
// failed messages in order. Non-success input passes through.
func Validate[T any](in Result[T], checks ...func(T) (valid bool, errMsg string)) Result[T] {
	for _, check := range checks {
		if check == nil {
			panic(outcome.ErrNilTransform)
		}
	}
	if !in.IsSuccess() {
		return in
	}

	var failed []string
	for _, check := range checks {
		if valid, errMsg := check(in.value); !valid {
			failed = append(failed, errMsg)
		}
	}
	if len(failed) == 0 {
		return in
	}

	err := outcome.NewError(failed[len(failed)-1])
	for i := len(failed) - 2; i >= 0; i-- {
		err = outcome.WrapError(failed[i], err)
	}
	return Fail[T](&err)
}

// Ensure triggers side effects for the current state and returns the input
// unchanged. Nil handlers are skipped.
func Ensure[T any](in Result[T], onSuccess func(T), onFail func(outcome.Error)) Result[T] {
	switch in.state {
	case outcome.StateSuccess:
		if onSuccess != nil {
			onSuccess(in.value)
		}
	case outcome.StateFail:
		if onFail != nil {
			onFail(in.err)
		}
	}
	return in
}

// Match reduces the result to a concrete value by applying the handler
// matching the current state. Both handlers are required.
func Match[In, Out any](in Result[In], onSuccess func(In) Out, onFail func(outcome.Error) Out) Out {
	if onSuccess == nil || onFail == nil {
		panic(outcome.ErrNilTransform)
	}
	if in.IsSuccess() {
		return onSuccess(in.value)
	}
	return onFail(in.Err())
}
