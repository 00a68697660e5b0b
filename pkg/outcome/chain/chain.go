package chain

import (
	"context"

	"github.com/outcome-go/outcome/pkg/outcome"
)

// Chain wraps a Result with context to enable fluent composition
type Chain[T any] struct {
	ctx context.Context
	res outcome.Result[T]
}

// Start creates a new chain from a Result
func Start[T any](ctx context.Context, r outcome.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, outcome.Ok(v))
}

// Result returns the underlying Result
func (c Chain[T]) Result() outcome.Result[T] {
	return c.res
}

// Then composes a function that already returns a Result
func (c Chain[T]) Then(onOk func(ctx context.Context, v T) outcome.Result[T]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onOk(c.ctx, c.res.Value())}
}

// ThenTry composes a function that returns (T, error)
func (c Chain[T]) ThenTry(try func(ctx context.Context, v T) (T, error)) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: outcome.Of(try(c.ctx, c.res.Value()))}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onOk func(ctx context.Context, v T) T) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: outcome.Ok(onOk(c.ctx, c.res.Value()))}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onOk func(context.Context, T), onErr func(context.Context, error)) Chain[T] {
	if c.res.IsErr() {
		if onErr != nil {
			onErr(c.ctx, c.res.Err())
		}
		return c
	}
	if onOk != nil {
		onOk(c.ctx, c.res.Value())
	}
	return c
}

// And requires both chains to succeed; the left failure wins
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return required
}

// Or falls back to the alternative chain; the right failure wins
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.IsOk() {
		return c
	}
	return alternative
}

// Finally collapses the chain to a final value
func Finally[T, U any](c Chain[T], onOk func(context.Context, T) U, onErr func(context.Context, error) U) U {
	return outcome.Match(c.res,
		func(v T) U { return onOk(c.ctx, v) },
		func(err error) U { return onErr(c.ctx, err) })
}

// Switch moves the chain to a new value type via a result-returning function
func Switch[T, U any](c Chain[T], onOk func(ctx context.Context, v T) outcome.Result[U]) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: outcome.AndThen(c.res, func(v T) outcome.Result[U] {
			return onOk(c.ctx, v)
		}),
	}
}

// MapTo transforms the chain to a new value type via a pure function
func MapTo[T, U any](c Chain[T], onOk func(ctx context.Context, v T) U) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: outcome.Map(c.res, func(v T) U {
			return onOk(c.ctx, v)
		}),
	}
}
