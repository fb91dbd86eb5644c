package future

import (
	"errors"
	"log/slog"

	"github.com/dmitrymomot/asyncx"
	"github.com/dmitrymomot/asyncx/core/logger"
)

type logConfig struct {
	logger *slog.Logger
}

// Option configures diagnostic logging for a Future at construction time.
type Option func(*logConfig)

// WithLogger attaches a structured logger that records fulfil and close
// events and each Get's outcome (resumed, cancelled, timeout, failed) for
// a Future. Nil (the
// default) disables logging entirely.
func WithLogger(l *slog.Logger) Option {
	return func(c *logConfig) { c.logger = l }
}

func resolveLogConfig(opts ...Option) logConfig {
	var cfg logConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// logOutcome records a fulfil or close event or a Get outcome,
// attributing it to the call site captured by callerOpts when the caller
// supplied asyncx.WithCallerInfo(Skip).
func logOutcome(l *slog.Logger, outcome string, callerOpts ...asyncx.Option) {
	if l == nil {
		return
	}
	ci := asyncx.ResolveCallerInfo(callerOpts...)
	l.Debug("asyncx future "+outcome,
		logger.Primitive("future"),
		logger.Outcome(outcome),
		logger.CallerFrom(ci),
	)
}

// outcomeFor classifies a Get error for logOutcome.
func outcomeFor(err error) string {
	if err == nil {
		return "resumed"
	}
	var cancelErr *asyncx.CancellationError
	if errors.As(err, &cancelErr) {
		return "cancelled"
	}
	var timeoutErr *asyncx.DurationTimeoutError
	if errors.As(err, &timeoutErr) {
		return "timeout"
	}
	return "failed"
}

// outcomeForWaitFor classifies a GetFor (result, error) pair for logOutcome.
func outcomeForWaitFor(res asyncx.WaitResult, err error) string {
	if err != nil {
		return outcomeFor(err)
	}
	if res == asyncx.Success {
		return "resumed"
	}
	return "timeout"
}
