package solo

import (
	"context"
	"errors"

	"github.com/ib-77/sumtypes/pkg/sum"
	"github.com/ib-77/sumtypes/pkg/sum/result"
)

func Succeed[T any](input T) sum.Result[T, error] {
	return sum.Ok[T, error](input)
}

func Fail[T any](err error) sum.Result[T, error] {
	return sum.Err[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) sum.Result[T, error] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input sum.Result[T, error],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) sum.Result[T, error] {

	return result.AndThen(input, func(in T) sum.Result[T, error] {
		if err := ctx.Err(); err != nil {
			return Fail[T](err)
		}
		if isValid, errMsg := validate(ctx, in); !isValid {
			return Fail[T](errors.New(errMsg))
		}
		return input
	})
}

// ValidateAll runs every validator against input and joins their errors.
// With breakOnError it stops at the first failure.
func ValidateAll[T any](
	ctx context.Context,
	input sum.Result[T, error],
	breakOnError bool,
	inputsF ...func(ctx context.Context, in sum.Result[T, error]) sum.Result[T, error]) sum.Result[T, error] {

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current sum.Result[T, error]) sum.Result[T, error] {
			if e, failed := current.Err().Get(); failed {
				err = errors.Join(append(errorsOf(err), e)...)
			}
			if err == nil {
				return current
			}
			return Fail[T](err)
		},
		inputsF...,
	)
}

func Switch[In any, Out any](ctx context.Context,
	input sum.Result[In, error],
	onSuccess func(ctx context.Context, r In) sum.Result[Out, error]) sum.Result[Out, error] {

	return result.AndThen(input, func(in In) sum.Result[Out, error] {
		if err := ctx.Err(); err != nil {
			return Fail[Out](err)
		}
		return onSuccess(ctx, in)
	})
}

func Map[In any, Out any](ctx context.Context,
	input sum.Result[In, error],
	onSuccess func(ctx context.Context, r In) Out) sum.Result[Out, error] {

	return Switch(ctx, input, func(ctx context.Context, in In) sum.Result[Out, error] {
		return Succeed(onSuccess(ctx, in))
	})
}

func Tee[T any](ctx context.Context,
	input sum.Result[T, error],
	onSuccess func(ctx context.Context, r sum.Result[T, error])) sum.Result[T, error] {

	return TeeIf(ctx, input,
		func(context.Context, sum.Result[T, error]) bool { return true },
		onSuccess)
}

func TeeIf[T any](ctx context.Context,
	input sum.Result[T, error],
	condition func(ctx context.Context, r sum.Result[T, error]) bool,
	onSuccessAndCondition func(ctx context.Context, r sum.Result[T, error])) sum.Result[T, error] {

	return result.AndThen(input, func(T) sum.Result[T, error] {
		if err := ctx.Err(); err != nil {
			return Fail[T](err)
		}
		if condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
		return input
	})
}

// DoubleTee calls onSuccess or onError for the matching track. Neither runs
// once ctx is done; an Ok input then becomes Err(ctx.Err()).
func DoubleTee[T any](ctx context.Context, input sum.Result[T, error],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error)) sum.Result[T, error] {

	if err := ctx.Err(); err != nil {
		if input.IsOk() {
			return Fail[T](err)
		}
		return input
	}
	if v, ok := input.Get(); ok {
		onSuccess(ctx, v)
	} else {
		onError(ctx, input.UnwrapErr())
	}
	return input
}

// DoubleMap transforms both tracks: the value through onSuccess and the error
// through onError.
func DoubleMap[In any, Out any](ctx context.Context, input sum.Result[In, error],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) error) sum.Result[Out, error] {

	mapped := result.Map(input, func(in In) Out { return onSuccess(ctx, in) })
	return result.MapErr(mapped, func(err error) error { return onError(ctx, err) })
}

func Try[In any, Out any](ctx context.Context, input sum.Result[In, error],
	onTryExecute func(ctx context.Context, r In) (Out, error)) sum.Result[Out, error] {

	return Switch(ctx, input, func(ctx context.Context, in In) sum.Result[Out, error] {
		out, err := onTryExecute(ctx, in)
		return sum.FromPair(out, err)
	})
}

func FailOnError[T any](ctx context.Context, input sum.Result[T, error],
	maybeErr func(ctx context.Context, in T) error) sum.Result[T, error] {

	return Switch(ctx, input, func(ctx context.Context, in T) sum.Result[T, error] {
		if err := maybeErr(ctx, in); err != nil {
			return Fail[T](err)
		}
		return input
	})
}

func Finally[In, Out any](ctx context.Context, input sum.Result[In, error],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	return result.MapOrElse(input,
		func(err error) Out { return onError(ctx, err) },
		func(in In) Out { return onSuccess(ctx, in) })
}

// Join threads input through inputsF, passing every intermediate result
// through concat. With breakOnError the fold stays on the Err track once a
// step fails and the remaining steps are skipped. A done context ends the fold
// with Err(ctx.Err()).
func Join[T any](ctx context.Context,
	input sum.Result[T, error],
	breakOnError bool,
	concat func(ctx context.Context, current sum.Result[T, error]) sum.Result[T, error],
	inputsF ...func(ctx context.Context, in sum.Result[T, error]) sum.Result[T, error]) sum.Result[T, error] {

	if len(inputsF) == 0 || concat == nil {
		return input
	}

	acc := input
	for _, step := range inputsF {
		if err := ctx.Err(); err != nil {
			return Fail[T](err)
		}

		current := acc
		run := func(T) sum.Result[T, error] { return concat(ctx, step(ctx, current)) }
		if breakOnError {
			acc = result.AndThen(current, run)
		} else {
			acc = run(current.UnwrapOrDefault())
		}
	}
	return acc
}
