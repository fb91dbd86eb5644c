package operation

import (
	"log/slog"

	"github.com/dmitrymomot/asyncx"
	"github.com/dmitrymomot/asyncx/core/logger"
)

type logConfig struct {
	logger *slog.Logger
}

// Option configures diagnostic logging for an Operation at construction
// time.
type Option func(*logConfig)

// WithLogger attaches a structured logger that records start, cancel and
// finish events for an Operation. Nil (the default) disables logging
// entirely.
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

// logOutcome records a start/cancel/finish event, attributing it to the
// call site captured by callerOpts when the caller supplied
// asyncx.WithCallerInfo(Skip).
func logOutcome(l *slog.Logger, outcome string, callerOpts ...asyncx.Option) {
	if l == nil {
		return
	}
	ci := asyncx.ResolveCallerInfo(callerOpts...)
	l.Debug("asyncx operation "+outcome,
		logger.Primitive("operation"),
		logger.Outcome(outcome),
		logger.CallerFrom(ci),
	)
}
