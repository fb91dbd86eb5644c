// Package suspend implements the cancellable suspension engine every
// coordination primitive in this module is built on: a single-shot
// Continuation (resumed at most once, by whichever of Resume/Fail wins a
// compare-and-swap) and a Registry that tables parked continuations in
// FIFO order under one lock shared with the owning primitive's own state.
//
// Cancellation is wired in with context.AfterFunc rather than a select in
// Recv, so a continuation's channel is read exactly once no matter which
// of "resumed" or "context done" happens first: the AfterFunc callback
// removes the waiter from the table and calls Fail, and if a Resume has
// already won the race that Fail is simply a no-op.
package suspend
