package solo

import (
	"context"
	"errors"
)

// errorsOf splits an errors.Join result back into its parts.
func errorsOf(err error) []error {
	var joined interface{ Unwrap() []error }
	switch {
	case err == nil:
		return nil
	case errors.As(err, &joined):
		return joined.Unwrap()
	}
	return []error{err}
}

// IsCancellationError reports whether err came from a done context.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
