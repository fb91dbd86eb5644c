package event

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/asyncx"
	"github.com/dmitrymomot/asyncx/core/suspend"
)

// Barrier releases every waiter once exactly limit callers have Arrived,
// then resets for the next round. Unlike Event, a Barrier's set condition
// is momentary: it holds only for the instant the last Arrive fires the
// release, and arrived immediately returns to zero for the next cycle.
type Barrier struct {
	reg     *suspend.Registry[uuid.UUID, struct{}]
	limit   int
	arrived int
	logger  *slog.Logger
}

// NewBarrier constructs a Barrier that releases once limit participants
// have arrived.
func NewBarrier(limit int, opts ...Option) *Barrier {
	cfg := resolveLogConfig(opts...)
	return &Barrier{reg: suspend.New[uuid.UUID, struct{}](), limit: limit, logger: cfg.logger}
}

// Signal is Arrive, for parity with the rest of the event family's
// Signal/Wait/WaitFor vocabulary.
func (b *Barrier) Signal(opts ...asyncx.Option) { b.Arrive(opts...) }

// Arrive registers one arrival. If this is the limit-th arrival since the
// last release, every other caller parked on Wait/WaitFor is resumed and
// the arrival count resets to zero for the next round.
func (b *Barrier) Arrive(opts ...asyncx.Option) {
	b.reg.SignalAll(func(int) (bool, struct{}) {
		b.arrived++
		if b.arrived < b.limit {
			return false, struct{}{}
		}
		b.arrived = 0
		return true, struct{}{}
	})
	logOutcome(b.logger, "barrier", "signalled", opts...)
}

// Wait suspends until the current round's limit-th arrival.
func (b *Barrier) Wait(ctx context.Context, opts ...asyncx.Option) error {
	err := b.wait(ctx)
	logOutcome(b.logger, "barrier", outcomeFor(err), opts...)
	return err
}

func (b *Barrier) wait(ctx context.Context) error {
	id := uuid.New()
	_, err := b.reg.Suspend(ctx, id, func(int) (bool, struct{}, error) {
		return false, struct{}{}, nil
	})
	return err
}

// WaitFor suspends until the current round's limit-th arrival or d elapses.
// A barrier has no meaningful "already satisfied" immediate state (arrival
// is momentary), so a zero duration always reports TimedOut.
func (b *Barrier) WaitFor(ctx context.Context, d time.Duration, opts ...asyncx.Option) (asyncx.WaitResult, error) {
	res, err := asyncx.BoundedWait(ctx, d, func() bool { return false }, b.wait)
	logOutcome(b.logger, "barrier", outcomeForWaitFor(res, err), opts...)
	return res, err
}

// Arrived reports how many participants have arrived in the current round.
func (b *Barrier) Arrived() int {
	var n int
	b.reg.Locked(func() { n = b.arrived })
	return n
}

// AsObject adapts the barrier onto asyncx.AsyncObject's fixed method set.
func (b *Barrier) AsObject() asyncx.AsyncObject { return barrierObject{b} }

type barrierObject struct{ b *Barrier }

func (o barrierObject) Signal() { o.b.Arrive() }

func (o barrierObject) Wait(ctx context.Context) error { return o.b.Wait(ctx) }

func (o barrierObject) WaitFor(ctx context.Context, d time.Duration) (asyncx.WaitResult, error) {
	return o.b.WaitFor(ctx, d)
}
