package event

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/asyncx"
)

// Mutex is a Semaphore of capacity one, renamed to the conventional
// Lock/Unlock vocabulary. holder records a diagnostic marker for whoever
// last acquired it; it is advisory only and never consulted for
// correctness (no reentrancy or ownership check is performed on Unlock).
type Mutex struct {
	sem    *Semaphore
	holder atomic.Value // holds string
	logger *slog.Logger
}

// NewMutex returns an unlocked Mutex.
func NewMutex(opts ...Option) *Mutex {
	cfg := resolveLogConfig(opts...)
	return &Mutex{sem: NewSemaphore(1, 1), logger: cfg.logger}
}

// Lock suspends until the mutex is free, then acquires it.
func (m *Mutex) Lock(ctx context.Context, opts ...asyncx.Option) error {
	err := m.sem.wait(ctx)
	logOutcome(m.logger, "mutex", outcomeFor(err), opts...)
	return err
}

// LockFor suspends until the mutex is free or d elapses.
func (m *Mutex) LockFor(ctx context.Context, d time.Duration, opts ...asyncx.Option) (asyncx.WaitResult, error) {
	res, err := asyncx.BoundedWait(ctx, d, m.sem.tryAcquire, m.sem.wait)
	logOutcome(m.logger, "mutex", outcomeForWaitFor(res, err), opts...)
	return res, err
}

// Unlock releases the mutex. Equivalent to Signal; provided for readability
// at call sites that never treat this as a generic AsyncObject.
func (m *Mutex) Unlock(opts ...asyncx.Option) {
	m.sem.Signal()
	logOutcome(m.logger, "mutex", "signalled", opts...)
}

// Signal is Unlock, for parity with the rest of the event family's
// Signal/Wait/WaitFor vocabulary.
func (m *Mutex) Signal(opts ...asyncx.Option) { m.Unlock(opts...) }

// Wait is Lock, for parity with the rest of the event family's
// Signal/Wait/WaitFor vocabulary.
func (m *Mutex) Wait(ctx context.Context, opts ...asyncx.Option) error { return m.Lock(ctx, opts...) }

// WaitFor is LockFor, for parity with the rest of the event family's
// Signal/Wait/WaitFor vocabulary.
func (m *Mutex) WaitFor(ctx context.Context, d time.Duration, opts ...asyncx.Option) (asyncx.WaitResult, error) {
	return m.LockFor(ctx, d, opts...)
}

// MarkHolder records an advisory label (e.g. a goroutine or request id) for
// whoever currently holds the mutex. Never required for correctness.
func (m *Mutex) MarkHolder(label string) { m.holder.Store(label) }

// Holder returns the last label recorded by MarkHolder, or "" if none.
func (m *Mutex) Holder() string {
	v, _ := m.holder.Load().(string)
	return v
}

// IsLocked reports whether the mutex is currently held.
func (m *Mutex) IsLocked() bool { return m.sem.Available() == 0 }

// AsObject adapts the mutex onto asyncx.AsyncObject's fixed method set.
func (m *Mutex) AsObject() asyncx.AsyncObject { return mutexObject{m} }

type mutexObject struct{ m *Mutex }

func (o mutexObject) Signal() { o.m.Unlock() }

func (o mutexObject) Wait(ctx context.Context) error { return o.m.Lock(ctx) }

func (o mutexObject) WaitFor(ctx context.Context, d time.Duration) (asyncx.WaitResult, error) {
	return o.m.LockFor(ctx, d)
}
