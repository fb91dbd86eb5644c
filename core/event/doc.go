// Package event implements the event-family coordination primitives built
// directly on core/suspend: Event, CountdownEvent, Semaphore, Mutex and
// Barrier. Each wraps a suspend.Registry keyed by uuid.UUID and runs its
// own set-predicate and release policy through the registry's SignalOne /
// SignalAll hooks, so the registry's lock doubles as the primitive's state
// lock and a waiter can never be missed between a state check and a table
// insert.
package event
