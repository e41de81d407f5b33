package sum

import "iter"

// Iterator is a pull-based sequence. Next returns Some for every produced
// element and None forever once the source is drained.
type Iterator[T any] interface {
	Next() Option[T]
}

// IntoIterator is implemented by containers that can be walked as an Iterator.
// Every call must return an independent iterator.
type IntoIterator[T any] interface {
	IntoIter() Iterator[T]
}

var (
	_ IntoIterator[int] = Option[int]{}
	_ IntoIterator[int] = Result[int, error]{}
	_ Iterator[int]     = (*ConstIterator[int])(nil)
	_ Iterator[int]     = (*MapIter[int, int])(nil)
)

// Seq adapts it to a range-over-func sequence. Ranging consumes it.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next().Get()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect drains it into a slice.
func Collect[T any](it Iterator[T]) []T {
	res := make([]T, 0)
	for v := range Seq(it) {
		res = append(res, v)
	}
	return res
}
