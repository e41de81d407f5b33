package sum

import "fmt"

// Option is either Some and holds a value, or None and holds nothing.
// The zero value is None.
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps value in a present Option.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

// None returns the empty Option for T.
func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// IsSomeAnd reports whether o is Some and its value satisfies pred.
func (o Option[T]) IsSomeAnd(pred func(T) bool) bool {
	return o.some && pred(o.value)
}

// Get returns the value and whether it is present, comma-ok style.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Unwrap returns the contained value and panics with *UnwrapError on None.
func (o Option[T]) Unwrap() T {
	if !o.some {
		unwrapPanic("Option.Unwrap")
	}
	return o.value
}

func (o Option[T]) UnwrapOr(defaultValue T) T {
	if o.some {
		return o.value
	}
	return defaultValue
}

func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.some {
		return o.value
	}
	return fn()
}

// UnwrapOrDefault returns the contained value or the zero value of T.
func (o Option[T]) UnwrapOrDefault() T {
	return o.value
}

// Filter keeps the value only when pred holds for it.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return o
	}
	return None[T]()
}

func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

func (o Option[T]) OrElse(fn func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return fn()
}

// Xor returns whichever of o and other is Some, or None when both or neither are.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	switch {
	case o.some && !other.some:
		return o
	case !o.some && other.some:
		return other
	}
	return None[T]()
}

// IntoIter returns a fresh iterator over the zero or one contained values.
func (o Option[T]) IntoIter() Iterator[T] {
	if o.some {
		return NewConstIterator(o.value)
	}
	return NewConstIterator[T]()
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
