package asyncx

import (
	"context"
	"time"
)

// BoundedWait is the shared implementation behind every primitive's
// WaitFor. immediate reports the primitive's current condition without
// suspending, under whatever lock the primitive itself holds; wait
// performs the actual suspension against the context it is given.
//
// A non-positive d never tables a waiter: it evaluates immediate and
// returns Success or TimedOut directly. Otherwise d bounds ctx with its
// own deadline, and the result is used to tell caller cancellation apart
// from the bounded wait simply running out: the former surfaces as a
// *CancellationError, the latter as a *DurationTimeoutError.
func BoundedWait(ctx context.Context, d time.Duration, immediate func() bool, wait func(context.Context) error) (WaitResult, error) {
	if d <= 0 {
		if immediate() {
			return Success, nil
		}
		return TimedOut, nil
	}

	bounded, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	err := wait(bounded)
	if err == nil {
		return Success, nil
	}
	if ctx.Err() != nil {
		return TimedOut, NewCancellationError(ctx.Err())
	}
	return TimedOut, NewDurationTimeoutError(d)
}
