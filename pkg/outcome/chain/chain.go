package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/typed"
)

// Chain wraps a typed.Result with context to enable fluent chaining. The
// context is handed to the caller's step functions; the chain itself never
// blocks or schedules anything.
type Chain[T any] struct {
	ctx context.Context
	res typed.Result[T]
}

func Start[T any](ctx context.Context, r typed.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, typed.Success(v))
}

func (c Chain[T]) Result() typed.Result[T] {
	return c.res
}

// Then composes functions that already return typed.Result[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) typed.Result[T]) Chain[T] {
	if !c.res.IsSuccess() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Value())}
}

// ThenTry composes functions that return (T, error) — like repo calls
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if !c.res.IsSuccess() {
		return c
	}
	v, err := try(c.ctx, c.res.Value())
	if err != nil {
		e := outcome.FromError(err)
		return Chain[T]{ctx: c.ctx, res: typed.Fail[T](&e)}
	}
	return Chain[T]{ctx: c.ctx, res: typed.Success(v)}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	if !c.res.IsSuccess() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: typed.Success(onSuccess(c.ctx, c.res.Value()))}
}

// WithError transforms the failure description of a failed chain and leaves
// a successful chain untouched. A nil transform panics before the state is
// inspected, same as the underlying result member.
func (c Chain[T]) WithError(transform func(outcome.Error) outcome.Error) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: c.res.WithError(transform)}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFail func(context.Context, outcome.Error)) Chain[T] {
	if c.res.IsFail() {
		if onFail != nil {
			onFail(c.ctx, c.res.Err())
		}
		return c
	}
	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Value())
	}
	return c
}

// Finally collapses the chain to a final value via the state handlers
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFail func(context.Context, outcome.Error) T,
) T {
	if onSuccess == nil || onFail == nil {
		panic(outcome.ErrNilTransform)
	}
	if c.res.IsSuccess() {
		return onSuccess(c.ctx, c.res.Value())
	}
	return onFail(c.ctx, c.res.Err())
}
