package logger

import (
	"log/slog"
	"runtime"
	"strconv"
	"time"

	"github.com/dmitrymomot/asyncx"
)

// Attribute helpers use the empty Attr pattern for nil safety.
// This allows calls like log.Info("msg", logger.Error(err)) without explicit nil checks,
// following the principle of making zero values useful.

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// ============================================================================
// Error Handling
// ============================================================================

// Errors groups multiple non-nil errors under the key "errors".
// Uses index-based keys to preserve error order. Returns empty Attr for all nil errors.
func Errors(errs ...error) slog.Attr {
	// Count non-nil errors first to allocate exact size
	count := 0
	for _, err := range errs {
		if err != nil {
			count++
		}
	}
	if count == 0 {
		return slog.Attr{}
	}

	as := make([]slog.Attr, 0, count)
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors, enabling safe usage without nil checks.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ============================================================================
// Performance and Timing
// ============================================================================

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed calculates and logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// ============================================================================
// Generic Identifiers
// ============================================================================

// ID creates a generic identifier attribute with a custom key.
func ID(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}

// ============================================================================
// Coordination Primitives
// ============================================================================

// Primitive identifies the kind of coordination primitive a log line concerns,
// e.g. "event", "semaphore", "mutex", "barrier", "future", "queue", "operation".
func Primitive(kind string) slog.Attr {
	return slog.String("primitive", kind)
}

// WaiterCount records how many goroutines are currently suspended on a
// Registry waiter table at the time of the logged event.
func WaiterCount(n int) slog.Attr {
	return slog.Int("waiters", n)
}

// Priority records the resolved priority a queue admission or drain decision
// was made under.
func Priority(p int8) slog.Attr {
	return slog.Int("priority", int(p))
}

// Running records a TaskQueue's current admitted-and-not-yet-complete count.
func Running(n int) slog.Attr {
	return slog.Int("running", n)
}

// CallerFrom converts an asyncx.CallerInfo into a grouped attribute suitable
// for attaching the call site of a suspend, admission, or cancellation event.
// Returns an empty Attr when ci is nil, so it is safe on primitives created
// without WithCallerInfo.
func CallerFrom(ci *asyncx.CallerInfo) slog.Attr {
	if ci == nil {
		return slog.Attr{}
	}
	return Group("caller",
		slog.String("function", ci.Function),
		slog.String("file", ci.File),
		slog.Int("line", ci.Line),
	)
}

// Outcome records what happened to a primitive: for a wait, "resumed",
// "cancelled", "timeout" or "failed"; for a non-suspending call, a word
// such as "signalled", "fulfilled", "started" or "closed".
func Outcome(result string) slog.Attr {
	return slog.String("outcome", result)
}

// ============================================================================
// Debugging
// ============================================================================

// Stack captures and returns the current stack trace.
func Stack() slog.Attr {
	const size = 64 << 10
	buf := make([]byte, size)
	buf = buf[:runtime.Stack(buf, false)]
	return slog.String("stack", string(buf))
}

// Caller returns information about the calling function.
func Caller() slog.Attr {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		return slog.Attr{}
	}
	return slog.String("caller", file+":"+strconv.Itoa(line))
}
