package maybe

import "github.com/ib-77/outcome/pkg/outcome"

// Factory standardizes construction of Maybe[T] values for one payload type.
// It is stateless and safe to share across goroutines.
type Factory[T any] interface {
	outcome.FailFactory[Maybe[T]]
	Success(value T) Maybe[T]
	None() Maybe[T]
}

type factory[T any] struct{}

// NewFactory returns the Maybe[T] factory. The implementation is unexported;
// this constructor is the only way to obtain one.
func NewFactory[T any]() Factory[T] {
	return factory[T]{}
}

func (factory[T]) Success(value T) Maybe[T] {
	return Success(value)
}

func (factory[T]) None() Maybe[T] {
	return None[T]()
}

func (factory[T]) Fail(err *outcome.Error) Maybe[T] {
	return Fail[T](err)
}
