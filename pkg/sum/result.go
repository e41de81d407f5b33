package sum

import "fmt"

// Result holds either a success value (Ok) or an error value (Err).
// The zero value is Err carrying the zero E.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok builds a successful Result holding value.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err builds a failed Result holding err.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

func (r Result[T, E]) IsOk() bool {
	return r.ok
}

func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

func (r Result[T, E]) IsOkAnd(pred func(T) bool) bool {
	return r.ok && pred(r.value)
}

func (r Result[T, E]) IsErrAnd(pred func(E) bool) bool {
	return !r.ok && pred(r.err)
}

// Get returns the success value and whether r is Ok.
func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.ok
}

// Unwrap returns the success value and panics with *UnwrapError on Err.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		unwrapPanic("Result.Unwrap")
	}
	return r.value
}

// UnwrapErr returns the error value and panics with *UnwrapError on Ok.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		unwrapPanic("Result.UnwrapErr")
	}
	return r.err
}

func (r Result[T, E]) UnwrapOr(defaultValue T) T {
	if r.ok {
		return r.value
	}
	return defaultValue
}

func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if r.ok {
		return r.value
	}
	return fn(r.err)
}

func (r Result[T, E]) UnwrapOrDefault() T {
	if r.ok {
		return r.value
	}
	var zero T
	return zero
}

// Or returns r when it is Ok, otherwise rhs. rhs is evaluated by the caller
// before the call; use OrElse to defer it.
func (r Result[T, E]) Or(rhs Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return rhs
}

func (r Result[T, E]) OrElse(fn func(E) Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return fn(r.err)
}

// Ok converts r into an Option of its success value, dropping any error.
func (r Result[T, E]) Ok() Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// Err converts r into an Option of its error value, dropping any success value.
func (r Result[T, E]) Err() Option[E] {
	if r.ok {
		return None[E]()
	}
	return Some(r.err)
}

func (r Result[T, E]) IntoIter() Iterator[T] {
	if r.ok {
		return NewConstIterator(r.value)
	}
	return NewConstIterator[T]()
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
