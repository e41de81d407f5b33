package sum

// FromOk builds an Option from a comma-ok pair such as a map lookup.
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// FromPtr treats a nil pointer as None and copies the pointee otherwise.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// FromPair converts a (value, error) return into a Result. A non-nil err
// always wins.
func FromPair[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](value)
}

// Unpack is the inverse of FromPair. An Err holding a nil error, including
// the zero Result, unpacks to ErrNilError.
func Unpack[T any](r Result[T, error]) (T, error) {
	if r.ok {
		return r.value, nil
	}
	var zero T
	if r.err == nil {
		return zero, ErrNilError
	}
	return zero, r.err
}
