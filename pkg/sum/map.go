package sum

// MapIter lazily applies a function to every element pulled from its source.
// It holds no buffered state and must have a single consumer.
type MapIter[T, U any] struct {
	src Iterator[T]
	fn  func(T) U
}

// Map wraps src so that fn is applied on every Next. Building the chain never
// calls fn.
func Map[T, U any](src Iterator[T], fn func(T) U) *MapIter[T, U] {
	return &MapIter[T, U]{src: src, fn: fn}
}

// Next pulls exactly one element from the source. fn is not called when the
// source is drained.
func (m *MapIter[T, U]) Next() Option[U] {
	v, ok := m.src.Next().Get()
	if !ok {
		return None[U]()
	}
	return Some(m.fn(v))
}

// Map stacks another same-typed stage on top of m.
func (m *MapIter[T, U]) Map(fn func(U) U) *MapIter[U, U] {
	return Map[U, U](m, fn)
}
