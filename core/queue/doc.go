// Package queue implements TaskQueue, a bounded-admission executor.
//
// A submission carries Flags{Enforce, Detached, Block, Barrier} describing
// how it should be scheduled. It admits synchronously when the queue is
// unblocked, empty, and (for Barrier) nothing else is running; otherwise
// it tables in strict FIFO order of successful tabling and is released by
// the completion protocol once its turn comes. Block and Barrier holders
// close the queue to further admissions until they finish; Barrier
// additionally waits for every already-running operation to finish first.
//
// Admission is further gated by a golang.org/x/sync/semaphore.Weighted
// sized to a configured concurrency budget: even an otherwise-admissible
// submission queues if the budget is exhausted, giving the queue a real
// bound on how much work runs at once rather than relying solely on
// Block/Barrier holders for serialization.
package queue
