package event

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/asyncx"
	"github.com/dmitrymomot/asyncx/core/suspend"
)

// Event is a one-way-door flag: once Signal is called it stays set forever,
// and every past, present or future Wait/WaitFor observes it as set.
type Event struct {
	reg    *suspend.Registry[uuid.UUID, struct{}]
	set    bool
	logger *slog.Logger
}

// NewEvent returns an unset Event.
func NewEvent(opts ...Option) *Event {
	cfg := resolveLogConfig(opts...)
	return &Event{reg: suspend.New[uuid.UUID, struct{}](), logger: cfg.logger}
}

// Signal sets the event. The first call resumes every waiter parked on
// Wait/WaitFor; later calls are no-ops. opts carry optional diagnostic
// call-site metadata for the log record, when a logger was configured.
func (e *Event) Signal(opts ...asyncx.Option) {
	e.reg.SignalAll(func(int) (bool, struct{}) {
		if e.set {
			return false, struct{}{}
		}
		e.set = true
		return true, struct{}{}
	})
	logOutcome(e.logger, "event", "signalled", opts...)
}

// IsSet reports the event's current state without suspending.
func (e *Event) IsSet() bool {
	var set bool
	e.reg.Locked(func() { set = e.set })
	return set
}

// Wait suspends until Signal has been called, or returns immediately if it
// already has.
func (e *Event) Wait(ctx context.Context, opts ...asyncx.Option) error {
	err := e.wait(ctx)
	logOutcome(e.logger, "event", outcomeFor(err), opts...)
	return err
}

func (e *Event) wait(ctx context.Context) error {
	id := uuid.New()
	_, err := e.reg.Suspend(ctx, id, func(int) (bool, struct{}, error) {
		if e.set {
			return true, struct{}{}, nil
		}
		return false, struct{}{}, nil
	})
	return err
}

// WaitFor suspends until Signal has been called or d elapses.
func (e *Event) WaitFor(ctx context.Context, d time.Duration, opts ...asyncx.Option) (asyncx.WaitResult, error) {
	res, err := asyncx.BoundedWait(ctx, d, e.IsSet, e.wait)
	logOutcome(e.logger, "event", outcomeForWaitFor(res, err), opts...)
	return res, err
}

// AsObject adapts the event onto asyncx.AsyncObject's fixed method set,
// for callers that want a uniform handle across primitive kinds without
// the diagnostic options tail.
func (e *Event) AsObject() asyncx.AsyncObject { return eventObject{e} }

type eventObject struct{ e *Event }

func (o eventObject) Signal() { o.e.Signal() }

func (o eventObject) Wait(ctx context.Context) error { return o.e.Wait(ctx) }

func (o eventObject) WaitFor(ctx context.Context, d time.Duration) (asyncx.WaitResult, error) {
	return o.e.WaitFor(ctx, d)
}
