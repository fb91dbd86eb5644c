// Package asyncx provides asynchronous coordination primitives for
// goroutine-based structured concurrency: events, countdown latches,
// semaphores, mutexes, barriers, futures, a priority task queue, and a
// bridge onto host operation-queue style APIs.
//
// Every primitive suspends on a context.Context instead of blocking an
// OS thread, and every wait is cancellation-aware: a caller whose context
// is cancelled before or during a wait returns with a *CancellationError
// without disturbing the primitive's state for other waiters.
//
// # Layers
//
// The subpackages are layered bottom-up and depend only downward:
//
//   - core/suspend: the cancellable suspension registry every other
//     primitive is built on.
//   - core/event: Event, CountdownEvent, Semaphore, Mutex, Barrier.
//   - core/future: Future[T] and its combinators (All, AllSettled, Race, Any).
//   - core/queue: TaskQueue, an admission-controlled executor with
//     priority, detachment, block and barrier flags.
//   - core/operation: Operation, a bridge exposing the wait protocol on
//     top of a start/cancel/finished state machine.
//
// This root package defines only the shared contract (AsyncObject),
// the error taxonomy, and diagnostic call-site options; it imports none
// of the subpackages. Every primitive's own Signal/Wait/WaitFor carries an
// extra variadic Option tail for call-site diagnostics, so none of them
// implement AsyncObject's fixed three-method signature directly; each
// instead exposes an AsObject() AsyncObject adapter for callers that want
// a uniform handle across primitive kinds without the diagnostics tail.
package asyncx
