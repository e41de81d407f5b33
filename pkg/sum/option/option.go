package option

import "github.com/ib-77/sumtypes/pkg/sum"

func Map[T, U any](o sum.Option[T], fn func(T) U) sum.Option[U] {
	if v, ok := o.Get(); ok {
		return sum.Some(fn(v))
	}
	return sum.None[U]()
}

func MapOr[T, U any](o sum.Option[T], defaultValue U, fn func(T) U) U {
	if v, ok := o.Get(); ok {
		return fn(v)
	}
	return defaultValue
}

func MapOrElse[T, U any](o sum.Option[T], defaultFn func() U, fn func(T) U) U {
	if v, ok := o.Get(); ok {
		return fn(v)
	}
	return defaultFn()
}

// OkOr maps Some(v) to Ok(v) and None to Err(err).
func OkOr[T, E any](o sum.Option[T], err E) sum.Result[T, E] {
	if v, ok := o.Get(); ok {
		return sum.Ok[T, E](v)
	}
	return sum.Err[T](err)
}

func OkOrElse[T, E any](o sum.Option[T], fn func() E) sum.Result[T, E] {
	if v, ok := o.Get(); ok {
		return sum.Ok[T, E](v)
	}
	return sum.Err[T](fn())
}

// And returns other when o is Some, otherwise None.
func And[T, U any](o sum.Option[T], other sum.Option[U]) sum.Option[U] {
	if o.IsSome() {
		return other
	}
	return sum.None[U]()
}

func AndThen[T, U any](o sum.Option[T], fn func(T) sum.Option[U]) sum.Option[U] {
	if v, ok := o.Get(); ok {
		return fn(v)
	}
	return sum.None[U]()
}

// Flatten removes one level of nesting.
func Flatten[T any](o sum.Option[sum.Option[T]]) sum.Option[T] {
	if inner, ok := o.Get(); ok {
		return inner
	}
	return sum.None[T]()
}

// Zip returns Some of both values when both options are Some.
func Zip[T, U any](o sum.Option[T], other sum.Option[U]) sum.Option[sum.Pair[T, U]] {
	a, okA := o.Get()
	b, okB := other.Get()
	if okA && okB {
		return sum.Some(sum.PairOf(a, b))
	}
	return sum.None[sum.Pair[T, U]]()
}

func Unzip[A, B any](o sum.Option[sum.Pair[A, B]]) (sum.Option[A], sum.Option[B]) {
	if p, ok := o.Get(); ok {
		return sum.Some(p.First), sum.Some(p.Second)
	}
	return sum.None[A](), sum.None[B]()
}

// Transpose turns Some(Ok(v)) into Ok(Some(v)), Some(Err(e)) into Err(e)
// and None into Ok(None).
func Transpose[T, E any](o sum.Option[sum.Result[T, E]]) sum.Result[sum.Option[T], E] {
	r, ok := o.Get()
	if !ok {
		return sum.Ok[sum.Option[T], E](sum.None[T]())
	}
	if v, ok := r.Get(); ok {
		return sum.Ok[sum.Option[T], E](sum.Some(v))
	}
	return sum.Err[sum.Option[T]](r.UnwrapErr())
}
