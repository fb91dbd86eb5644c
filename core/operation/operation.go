package operation

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/asyncx"
)

// Operation adapts the library's wait protocol onto a host-style
// start/cancel/finished state machine. It is safe for concurrent use.
type Operation struct {
	mu     sync.Mutex
	cancel context.CancelCauseFunc

	started     atomic.Bool
	isExecuting atomic.Bool
	isFinished  atomic.Bool
	isCancelled atomic.Bool

	done      chan struct{}
	closeOnce sync.Once
	resultSet sync.Once
	result    error

	trackChildren bool
	group         *errgroup.Group

	logger *slog.Logger
}

// New constructs a fresh, unstarted Operation. When trackChildren is true,
// cooperative cancellation is propagated into an internal errgroup.Group
// that the body's own child goroutines (spawned via Group) are tracked
// by; Result then waits for that group, not just the top-level body call.
func New(trackChildren bool, opts ...Option) *Operation {
	cfg := resolveLogConfig(opts...)
	return &Operation{done: make(chan struct{}), trackChildren: trackChildren, logger: cfg.logger}
}

// Group returns the internal child-task group when trackChildren was set
// and the operation has started, or nil otherwise. Spawn additional
// cooperative child work with Group().Go so Result waits for it too.
func (o *Operation) Group() *errgroup.Group {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.group
}

// Start spawns body as a child task and transitions NEW to EXECUTING. A
// call on an already-started (EXECUTING or FINISHED) operation is a no-op.
func (o *Operation) Start(ctx context.Context, body func(context.Context) error, opts ...asyncx.Option) {
	if o.isFinished.Load() {
		return
	}
	if !o.started.CompareAndSwap(false, true) {
		return
	}

	runCtx, cancel := context.WithCancelCause(ctx)
	o.mu.Lock()
	o.cancel = cancel
	o.mu.Unlock()

	o.isExecuting.Store(true)
	logOutcome(o.logger, "started", opts...)
	go func() {
		defer o.finish()

		var err error
		if o.trackChildren {
			group, gctx := errgroup.WithContext(runCtx)
			o.mu.Lock()
			o.group = group
			o.mu.Unlock()
			group.Go(func() error { return body(gctx) })
			err = group.Wait()
		} else {
			err = body(runCtx)
		}
		o.resultSet.Do(func() { o.result = err })
	}()
}

// Signal is an alias for Start, matching the host-queue's imperative
// vocabulary for the same transition.
func (o *Operation) Signal(ctx context.Context, body func(context.Context) error, opts ...asyncx.Option) {
	o.Start(ctx, body, opts...)
}

// Cancel marks the operation cancelled and requests cooperative
// cancellation on the running child task, if any. Before Start it moves
// the operation straight to FINISHED and the body never runs. Once Start
// has run, Cancel only cancels the body's context: it does not change
// IsExecuting or IsFinished itself, and the operation reaches FINISHED when
// the body returns. Safe to call from any state.
func (o *Operation) Cancel(opts ...asyncx.Option) {
	o.mu.Lock()
	cancel := o.cancel
	o.mu.Unlock()

	o.isCancelled.Store(true)
	logOutcome(o.logger, "cancelled", opts...)
	if cancel != nil {
		cancel(context.Canceled)
		return
	}
	if o.isFinished.Load() {
		return
	}
	o.resultSet.Do(func() { o.result = asyncx.NewCancellationError(context.Canceled) })
	o.finish()
}

func (o *Operation) finish() {
	o.isExecuting.Store(false)
	o.isFinished.Store(true)
	o.closeOnce.Do(func() { close(o.done) })
}

// Result blocks until the operation finishes and returns its body's
// result. Cancelling ctx fails only this read, not the operation itself.
// Reading Result before Start/Signal was ever called fails immediately
// with a *asyncx.EarlyInvokeError.
func (o *Operation) Result(ctx context.Context, opts ...asyncx.Option) (error, error) {
	if !o.started.Load() {
		logOutcome(o.logger, "failed", opts...)
		return nil, &asyncx.EarlyInvokeError{}
	}
	select {
	case <-o.done:
		logOutcome(o.logger, "resumed", opts...)
		return o.result, nil
	case <-ctx.Done():
		logOutcome(o.logger, "cancelled", opts...)
		return nil, asyncx.NewCancellationError(ctx.Err())
	}
}

// IsExecuting reports whether the body is currently running.
func (o *Operation) IsExecuting() bool { return o.isExecuting.Load() }

// IsFinished reports whether the operation has reached its terminal state.
func (o *Operation) IsFinished() bool { return o.isFinished.Load() }

// IsCancelled reports whether Cancel has ever been called on this
// operation, regardless of whether the body honored it.
func (o *Operation) IsCancelled() bool { return o.isCancelled.Load() }
