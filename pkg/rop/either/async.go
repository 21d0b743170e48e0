package either

import (
	"context"
	"errors"
	"fmt"
)

var ErrStepPanicked = errors.New("async step panicked")

// ProceedRightAsync is ProceedRight for a step that runs asynchronously.
// The returned channel receives exactly one Either and is then closed.
// On a Right, fn runs in its own goroutine and receives ctx; the step is
// not cancelled by the library, fn decides how to honour ctx. On a Left
// the channel is resolved before returning and no goroutine is started.
//
// A panic in fn is recovered. When L can hold an error the channel receives
// a Left wrapping ErrStepPanicked, otherwise it is closed without a value.
func ProceedRightAsync[L, R, T any](ctx context.Context, e Either[L, R],
	fn func(ctx context.Context, r R) Either[L, T]) <-chan Either[L, T] {

	out := make(chan Either[L, T], 1)

	if !e.isRight {
		out <- Left[L, T](e.left)
		close(out)
		return out
	}

	go func() {
		defer close(out)
		defer func() {
			if p := recover(); p != nil {
				if l, ok := any(fmt.Errorf("%w: %v", ErrStepPanicked, p)).(L); ok {
					out <- Left[L, T](l)
				}
			}
		}()
		out <- fn(ctx, e.right)
	}()

	return out
}

// Await blocks until the async step resolves or ctx is done, whichever
// comes first. The second return value is false when ctx ended the wait
// or the step closed the channel without a value.
func Await[L, T any](ctx context.Context, in <-chan Either[L, T]) (Either[L, T], bool) {
	select {
	case res, ok := <-in:
		return res, ok
	case <-ctx.Done():
		return Either[L, T]{}, false
	}
}
