package typed

import "github.com/ib-77/outcome/pkg/outcome"

// Factory standardizes construction of Result[T] values for one payload
// type. It is stateless and safe to share across goroutines.
type Factory[T any] interface {
	outcome.FailFactory[Result[T]]
	Success(value T) Result[T]
}

type factory[T any] struct{}

// NewFactory returns the Result[T] factory. The implementation is
// unexported; this constructor is the only way to obtain one.
func NewFactory[T any]() Factory[T] {
	return factory[T]{}
}

func (factory[T]) Success(value T) Result[T] {
	return Success(value)
}

func (factory[T]) Fail(err *outcome.Error) Result[T] {
	return Fail[T](err)
}
