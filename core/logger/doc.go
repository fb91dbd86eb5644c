// Package logger provides slog.Attr helpers for the coordination
// primitives in this module. It does not wrap or construct *slog.Logger
// values: every primitive and executor that logs (the core/event family,
// core/future.Future, core/queue.TaskQueue, core/operation.Operation)
// accepts a *slog.Logger directly via a WithLogger option and calls its Debug/Info/Warn/Error methods with
// attributes built from this package.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/asyncx/core/logger"
//
//	log.Debug("admitted",
//		logger.Primitive("queue"),
//		logger.Priority(p),
//		logger.Running(q.CurrentRunning()),
//		logger.CallerFrom(callerInfo),
//	)
//
// # Error Handling
//
//	log.Error("suspend failed",
//		logger.Error(err),
//		logger.Primitive("semaphore"),
//	)
//
//	log.Error("combinator settled with failures",
//		logger.Errors(err1, err2, err3),
//	)
//
// # Timing
//
//	start := time.Now()
//	// ... suspend ...
//	log.Debug("resumed",
//		logger.Elapsed(start),
//		logger.Outcome("resumed"),
//	)
//
// # Call Site Diagnostics
//
// asyncx.CallerInfo records where a primitive suspended or a queue entry
// was submitted, when WithCallerInfo is used. CallerFrom renders it as a
// grouped attribute, returning an empty Attr when no caller info was
// captured:
//
//	log.Warn("timed out",
//		logger.CallerFrom(ci),
//		logger.Duration(d),
//	)
//
// Error, Errors, and ID follow the empty-Attr-for-nil pattern throughout:
// they are safe to pass unconditionally without a prior nil check.
package logger
