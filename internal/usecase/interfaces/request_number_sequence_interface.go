package interfaces

import "context"

// IRequestNumberSequence produces the monotonic suffix for request numbers.
// Next must never hand the same value to two concurrent callers.

type IRequestNumberSequence interface {
	Next(ctx context.Context) (int64, error)
}
