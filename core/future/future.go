package future

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/dmitrymomot/asyncx"
	"github.com/dmitrymomot/asyncx/core/suspend"
)

// Result pairs a settled value with an error. AllSettled collects one
// Result per input future.
type Result[T any] struct {
	Value T
	Err   error
}

// Future is a single-assignment cell: Fulfill settles it at most once, and
// Get returns the settled Result to every caller, past or future. Waiters
// parked on Get before settlement are resumed in one broadcast the moment
// Fulfill runs.
type Future[T any] struct {
	reg     *suspend.Registry[uuid.UUID, Result[T]]
	settled bool
	result  Result[T]
	logger  *slog.Logger
}

// New constructs an unsettled Future.
func New[T any](opts ...Option) *Future[T] {
	cfg := resolveLogConfig(opts...)
	return &Future[T]{reg: suspend.New[uuid.UUID, Result[T]](), logger: cfg.logger}
}

// Fulfill settles the future with (v, err). A future settles at most once:
// calls after the first are no-ops, matching the monotonic guarantee Get
// depends on.
func (f *Future[T]) Fulfill(v T, err error, opts ...asyncx.Option) {
	f.reg.SignalAll(func(int) (bool, Result[T]) {
		if f.settled {
			return false, Result[T]{}
		}
		f.settled = true
		f.result = Result[T]{Value: v, Err: err}
		return true, f.result
	})
	logOutcome(f.logger, "fulfilled", opts...)
}

// Get returns the settled value once Fulfill has run, or suspends until it
// does. Cancelling ctx fails only this call; the future itself, and every
// other waiter, is unaffected.
func (f *Future[T]) Get(ctx context.Context, opts ...asyncx.Option) (T, error) {
	v, err := f.get(ctx)
	logOutcome(f.logger, outcomeFor(err), opts...)
	return v, err
}

func (f *Future[T]) get(ctx context.Context) (T, error) {
	id := uuid.New()
	r, err := f.reg.Suspend(ctx, id, func(int) (bool, Result[T], error) {
		if f.settled {
			return true, f.result, nil
		}
		return false, Result[T]{}, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return r.Value, r.Err
}

// GetFor is Get bounded by d.
func (f *Future[T]) GetFor(ctx context.Context, d time.Duration, opts ...asyncx.Option) (T, asyncx.WaitResult, error) {
	v, res, err := f.getFor(ctx, d)
	logOutcome(f.logger, outcomeForWaitFor(res, err), opts...)
	return v, res, err
}

func (f *Future[T]) getFor(ctx context.Context, d time.Duration) (T, asyncx.WaitResult, error) {
	if d <= 0 {
		if f.IsSettled() {
			v, err := f.get(ctx)
			return v, asyncx.Success, err
		}
		var zero T
		return zero, asyncx.TimedOut, nil
	}

	bounded, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	v, err := f.get(bounded)
	if err == nil {
		return v, asyncx.Success, nil
	}
	if ctx.Err() != nil {
		var zero T
		return zero, asyncx.TimedOut, asyncx.NewCancellationError(ctx.Err())
	}
	var zero T
	return zero, asyncx.TimedOut, asyncx.NewDurationTimeoutError(d)
}

// IsSettled reports whether Fulfill has run.
func (f *Future[T]) IsSettled() bool {
	var settled bool
	f.reg.Locked(func() { settled = f.settled })
	return settled
}

// Close tears the future down. If err is non-nil every waiter still parked
// on Get is failed with a *asyncx.CancellationError wrapping err, and the
// individual failures are joined with multierr into the returned error
// when more than one waiter was live. Calling Close(nil) on a future with
// live waiters is the caller's error to avoid — this module does not guard
// against it at runtime, matching the contract that an infallible future
// (never Fulfilled with a non-nil error) is never closed while anyone
// still waits on it.
func (f *Future[T]) Close(err error, opts ...asyncx.Option) error {
	if err == nil {
		return nil
	}
	cancelErr := asyncx.NewCancellationError(err)
	n := f.reg.FailAll(cancelErr)
	logOutcome(f.logger, "closed", opts...)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return cancelErr
	}
	var joined error
	for i := 0; i < n; i++ {
		joined = multierr.Append(joined, cancelErr)
	}
	return joined
}

// AsObject adapts the future onto asyncx.AsyncObject: Signal is unsupported
// (a future settles only via Fulfill, which requires a value) and panics if
// called, Wait/WaitFor discard the settled value and surface only Err.
func (f *Future[T]) AsObject() asyncx.AsyncObject { return asObject[T]{f} }

type asObject[T any] struct{ f *Future[T] }

func (a asObject[T]) Signal() {
	panic("asyncx: Future has no value-less Signal; call Fulfill directly")
}

func (a asObject[T]) Wait(ctx context.Context) error {
	_, err := a.f.get(ctx)
	return err
}

func (a asObject[T]) WaitFor(ctx context.Context, d time.Duration) (asyncx.WaitResult, error) {
	_, res, err := a.f.getFor(ctx, d)
	return res, err
}
