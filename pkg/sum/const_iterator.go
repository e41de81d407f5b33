package sum

import "slices"

// ConstIterator yields a fixed list of values front to back, then None.
// It is not safe for concurrent use.
type ConstIterator[T any] struct {
	values []T
	pos    int
}

func NewConstIterator[T any](values ...T) *ConstIterator[T] {
	return &ConstIterator[T]{values: slices.Clone(values)}
}

func (i *ConstIterator[T]) Next() Option[T] {
	if i.pos >= len(i.values) {
		return None[T]()
	}
	v := i.values[i.pos]
	var zero T
	i.values[i.pos] = zero
	i.pos++
	return Some(v)
}

// Map is shorthand for Map(i, fn) when the element type stays the same.
func (i *ConstIterator[T]) Map(fn func(T) T) *MapIter[T, T] {
	return Map[T, T](i, fn)
}
