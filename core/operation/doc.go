// Package operation implements Operation, a bridge exposing this module's
// suspension/cancellation protocol on top of a host platform's imperative
// start/cancel/finished operation abstraction.
//
// An Operation begins NEW. Start (or its alias Signal) spawns the body as
// a child task and moves it to EXECUTING; the body's return moves it to
// FINISHED. A Cancel before Start moves it to FINISHED directly; a Cancel
// while EXECUTING cancels the body's context, and the operation reaches
// FINISHED once the body returns. A second Start or
// Signal call, from EXECUTING or FINISHED, is a no-op — only the first
// ever spawns a body.
package operation
