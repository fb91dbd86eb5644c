package event

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/asyncx"
	"github.com/dmitrymomot/asyncx/core/suspend"
)

// CountdownEvent starts unset with a counter at initial and becomes set
// once count drops to or below limit. Signal/SignalBy count down toward
// the threshold; Increment/IncrementBy count away from it and can silently
// uncross a threshold already crossed, unsetting the event again without
// disturbing waiters already resumed. Every threshold crossing is detected
// and released under the registry's own lock, so a waiter can never
// observe a count on the set side while the event still reports unset.
type CountdownEvent struct {
	reg     *suspend.Registry[uuid.UUID, struct{}]
	limit   int64
	initial int64
	count   int64
	logger  *slog.Logger
}

// NewCountdownEvent constructs a CountdownEvent that becomes set once its
// counter drops to or below limit, starting from initial.
func NewCountdownEvent(limit, initial int64, opts ...Option) *CountdownEvent {
	cfg := resolveLogConfig(opts...)
	return &CountdownEvent{
		reg:     suspend.New[uuid.UUID, struct{}](),
		limit:   limit,
		initial: initial,
		count:   initial,
		logger:  cfg.logger,
	}
}

// Signal decrements the counter by one; equivalent to SignalBy(1).
func (c *CountdownEvent) Signal(opts ...asyncx.Option) { c.SignalBy(1, opts...) }

// SignalBy decrements the counter by delta, floored at zero. If this
// transitions count from above the limit to at-or-below it, every parked
// waiter is resumed.
func (c *CountdownEvent) SignalBy(delta int64, opts ...asyncx.Option) {
	c.reg.SignalAll(func(int) (bool, struct{}) {
		wasSet := c.count <= c.limit
		c.count -= delta
		if c.count < 0 {
			c.count = 0
		}
		isSet := c.count <= c.limit
		return !wasSet && isSet, struct{}{}
	})
	logOutcome(c.logger, "countdown", "signalled", opts...)
}

// Increment moves the counter by one away from the threshold; equivalent
// to IncrementBy(1).
func (c *CountdownEvent) Increment(opts ...asyncx.Option) { c.IncrementBy(1, opts...) }

// IncrementBy adds delta to the counter. If this uncrosses the threshold
// the event silently becomes unset again; waiters already resumed by an
// earlier crossing are unaffected.
func (c *CountdownEvent) IncrementBy(delta int64, opts ...asyncx.Option) {
	c.reg.Locked(func() { c.count += delta })
	logOutcome(c.logger, "countdown", "incremented", opts...)
}

// Reset restores the counter to its current baseline I, set by
// construction or the most recent ResetTo.
func (c *CountdownEvent) Reset(opts ...asyncx.Option) {
	var initial int64
	c.reg.Locked(func() { initial = c.initial })
	c.ResetTo(initial, opts...)
}

// ResetTo sets both the baseline I and the counter C to v, per
// reset(to I'): I ← I'; C ← I'. A reset that crosses the threshold
// resumes parked waiters under the same lock, exactly like SignalBy; a
// reset that uncrosses it simply unsets the event without disturbing
// callers already resumed.
func (c *CountdownEvent) ResetTo(v int64, opts ...asyncx.Option) {
	c.reg.SignalAll(func(int) (bool, struct{}) {
		wasSet := c.count <= c.limit
		c.initial = v
		c.count = v
		isSet := c.count <= c.limit
		return !wasSet && isSet, struct{}{}
	})
	logOutcome(c.logger, "countdown", "reset", opts...)
}

// IsSet reports whether the counter has dropped to or below its limit.
func (c *CountdownEvent) IsSet() bool {
	var set bool
	c.reg.Locked(func() { set = c.count <= c.limit })
	return set
}

// Wait suspends until the counter drops to or below its limit.
func (c *CountdownEvent) Wait(ctx context.Context, opts ...asyncx.Option) error {
	err := c.wait(ctx)
	logOutcome(c.logger, "countdown", outcomeFor(err), opts...)
	return err
}

func (c *CountdownEvent) wait(ctx context.Context) error {
	id := uuid.New()
	_, err := c.reg.Suspend(ctx, id, func(int) (bool, struct{}, error) {
		if c.count <= c.limit {
			return true, struct{}{}, nil
		}
		return false, struct{}{}, nil
	})
	return err
}

// WaitFor suspends until the counter drops to or below its limit or d
// elapses.
func (c *CountdownEvent) WaitFor(ctx context.Context, d time.Duration, opts ...asyncx.Option) (asyncx.WaitResult, error) {
	res, err := asyncx.BoundedWait(ctx, d, c.IsSet, c.wait)
	logOutcome(c.logger, "countdown", outcomeForWaitFor(res, err), opts...)
	return res, err
}

// Count reports the counter's current value without suspending.
func (c *CountdownEvent) Count() int64 {
	var n int64
	c.reg.Locked(func() { n = c.count })
	return n
}

// AsObject adapts the countdown event onto asyncx.AsyncObject's fixed
// method set.
func (c *CountdownEvent) AsObject() asyncx.AsyncObject { return countdownObject{c} }

type countdownObject struct{ c *CountdownEvent }

func (o countdownObject) Signal() { o.c.Signal() }

func (o countdownObject) Wait(ctx context.Context) error { return o.c.Wait(ctx) }

func (o countdownObject) WaitFor(ctx context.Context, d time.Duration) (asyncx.WaitResult, error) {
	return o.c.WaitFor(ctx, d)
}
