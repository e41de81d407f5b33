package sum

// Pair is the two element tuple produced by option.Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

func PairOf[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Unpack returns both elements.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}
