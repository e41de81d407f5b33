package chain

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/sumtypes/pkg/sum"
	"github.com/ib-77/sumtypes/pkg/sum/solo"
)

// Chain wraps a sum.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx       context.Context
	id        uuid.UUID
	createdAt time.Time
	result    sum.Result[T, error]
}

// Start creates a new chain from a sum.Result
func Start[T any](ctx context.Context, result sum.Result[T, error]) *Chain[T] {
	return &Chain[T]{
		ctx:       ctx,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		result:    result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, solo.Succeed(value))
}

// FromPair creates a new chain from a (value, error) return
func FromPair[T any](ctx context.Context, value T, err error) *Chain[T] {
	return Start(ctx, sum.FromPair(value, err))
}

func derive[T, U any](c *Chain[T], result sum.Result[U, error]) *Chain[U] {
	return &Chain[U]{
		ctx:       c.ctx,
		id:        c.id,
		createdAt: c.createdAt,
		result:    result,
	}
}

// Result returns the underlying sum.Result
func (c *Chain[T]) Result() sum.Result[T, error] {
	return c.result
}

// Unpack returns the chain outcome as a (value, error) pair
func (c *Chain[T]) Unpack() (T, error) {
	return sum.Unpack(c.result)
}

func (c *Chain[T]) Id() uuid.UUID {
	return c.id
}

// CreatedAt is the time the chain was started (UTC)
func (c *Chain[T]) CreatedAt() time.Time {
	return c.createdAt
}

// Then chains a function that returns sum.Result[U, error]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) sum.Result[U, error]) *Chain[U] {
	return derive(c, solo.Switch(c.ctx, c.result, onSuccess))
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return derive(c, solo.Try(c.ctx, c.result, tryOnSuccess))
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return derive(c, solo.Map(c.ctx, c.result, onSuccess))
}

// Validate fails the chain with errMsg when validate reports false
func (c *Chain[T]) Validate(validate func(context.Context, T) (bool, string)) *Chain[T] {
	return derive(c, solo.AndValidate(c.ctx, c.result, validate))
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return derive(c, solo.Tee(c.ctx, c.result,
		func(ctx context.Context, result sum.Result[T, error]) {
			onSuccess(ctx, result.Unwrap())
		}))
}

// Recover replaces a failure with the result of onFailure
func (c *Chain[T]) Recover(onFailure func(context.Context, error) sum.Result[T, error]) *Chain[T] {
	return derive(c, c.result.OrElse(func(err error) sum.Result[T, error] {
		return onFailure(c.ctx, err)
	}))
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure)
}
