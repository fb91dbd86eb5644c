package asyncx

import "runtime"

// CallerInfo carries the optional file/function/line metadata spec'd for
// every public operation. It never affects semantics; it exists purely so
// log records emitted on suspend/resume/cancel/timeout can be traced back
// to a call site. Implementers targeting runtimes without caller-location
// capture may ignore it entirely.
type CallerInfo struct {
	File     string
	Function string
	Line     int
}

// Option configures the optional diagnostic metadata accepted by public
// operations across this module. Mirrors the teacher's functional-options
// pattern (WithXxx returning a closure over the receiver).
type Option func(*CallerInfo)

// WithCallerInfo captures the immediate caller's file, function and line
// for diagnostic tracing.
func WithCallerInfo() Option {
	return WithCallerInfoSkip(1)
}

// WithCallerInfoSkip is WithCallerInfo with an explicit runtime.Caller skip
// count, for wrapper functions that want to attribute the call site to one
// of their own callers instead of themselves.
func WithCallerInfoSkip(skip int) Option {
	return func(ci *CallerInfo) {
		pc, file, line, ok := runtime.Caller(skip + 1)
		if !ok {
			return
		}
		ci.File = file
		ci.Line = line
		if fn := runtime.FuncForPC(pc); fn != nil {
			ci.Function = fn.Name()
		}
	}
}

// ResolveCallerInfo applies opts to a fresh CallerInfo and returns it. A
// nil *CallerInfo (no Option supplied WithCallerInfo*) is a valid, useful
// zero value for logging helpers that accept it.
func ResolveCallerInfo(opts ...Option) *CallerInfo {
	if len(opts) == 0 {
		return nil
	}
	ci := &CallerInfo{}
	for _, opt := range opts {
		opt(ci)
	}
	return ci
}
