// Package future implements Future[T], a single-assignment broadcast cell,
// and its combinators All, AllSettled, Race and Any. A Future settles at
// most once — further Fulfill calls are no-ops — and every past, present
// or future Get observes the same settled Result[T].
//
// Every combinator fans out one goroutine per input future's Get. All and
// AllSettled run them in an errgroup.Group; Race and Any start plain
// goroutines. All, Race and Any cancel the remaining Gets via a derived
// context once the combinator's own outcome is decided.
package future
