package result

import "github.com/ib-77/sumtypes/pkg/sum"

func Map[T, U, E any](r sum.Result[T, E], fn func(T) U) sum.Result[U, E] {
	if v, ok := r.Get(); ok {
		return sum.Ok[U, E](fn(v))
	}
	return sum.Err[U](r.UnwrapErr())
}

func MapErr[T, E, F any](r sum.Result[T, E], fn func(E) F) sum.Result[T, F] {
	if v, ok := r.Get(); ok {
		return sum.Ok[T, F](v)
	}
	return sum.Err[T](fn(r.UnwrapErr()))
}

func MapOr[T, U, E any](r sum.Result[T, E], defaultValue U, fn func(T) U) U {
	if v, ok := r.Get(); ok {
		return fn(v)
	}
	return defaultValue
}

func MapOrElse[T, U, E any](r sum.Result[T, E], defaultFn func(E) U, fn func(T) U) U {
	if v, ok := r.Get(); ok {
		return fn(v)
	}
	return defaultFn(r.UnwrapErr())
}

// And returns rhs when r is Ok, otherwise r's error. rhs is evaluated by the
// caller before the call; use AndThen to defer it.
func And[T, U, E any](r sum.Result[T, E], rhs sum.Result[U, E]) sum.Result[U, E] {
	if r.IsOk() {
		return rhs
	}
	return sum.Err[U](r.UnwrapErr())
}

func AndThen[T, U, E any](r sum.Result[T, E], fn func(T) sum.Result[U, E]) sum.Result[U, E] {
	if v, ok := r.Get(); ok {
		return fn(v)
	}
	return sum.Err[U](r.UnwrapErr())
}

// Flatten removes one level of nesting.
func Flatten[T, E any](r sum.Result[sum.Result[T, E], E]) sum.Result[T, E] {
	if inner, ok := r.Get(); ok {
		return inner
	}
	return sum.Err[T](r.UnwrapErr())
}

// Transpose turns Ok(Some(v)) into Some(Ok(v)), Ok(None) into None and
// Err(e) into Some(Err(e)).
func Transpose[T, E any](r sum.Result[sum.Option[T], E]) sum.Option[sum.Result[T, E]] {
	o, ok := r.Get()
	if !ok {
		return sum.Some(sum.Err[T](r.UnwrapErr()))
	}
	if v, ok := o.Get(); ok {
		return sum.Some(sum.Ok[T, E](v))
	}
	return sum.None[sum.Result[T, E]]()
}
