package sum

import (
	"errors"
	"fmt"
)

// ErrNilError is returned by Unpack for an Err that holds a nil error, so the
// failure is never reported as success.
var ErrNilError = errors.New("sum: Err holds a nil error")

// UnwrapError is the panic value raised when a value is extracted from the
// wrong variant.
type UnwrapError struct {
	// Accessor names the misused method, e.g. "Option.Unwrap".
	Accessor string
}

func (e *UnwrapError) Error() string {
	switch e.Accessor {
	case "Option.Unwrap":
		return fmt.Sprintf("sum: %s called on None", e.Accessor)
	case "Result.Unwrap":
		return fmt.Sprintf("sum: %s called on Err", e.Accessor)
	case "Result.UnwrapErr":
		return fmt.Sprintf("sum: %s called on Ok", e.Accessor)
	}
	return fmt.Sprintf("sum: %s called on the wrong variant", e.Accessor)
}

func unwrapPanic(accessor string) {
	panic(&UnwrapError{Accessor: accessor})
}
