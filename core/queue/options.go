package queue

import (
	"log/slog"

	"github.com/dmitrymomot/asyncx"
)

type config struct {
	defaultPriority Priority
	logger          *slog.Logger
}

// Option configures a TaskQueue at construction time.
type Option func(*config)

// WithDefaultPriority overrides the queue's default priority, used as the
// queueDefault candidate in the priority-selection formula.
func WithDefaultPriority(p Priority) Option {
	return func(c *config) { c.defaultPriority = p }
}

// WithLogger overrides the queue's structured logger. A nil logger
// disables admission/drain logging entirely.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

type execConfig struct {
	requested  *Priority
	callerOpts []asyncx.Option
}

// ExecOption configures a single Exec submission.
type ExecOption func(*execConfig)

// WithRequestedPriority supplies the "requested" candidate in the
// priority-selection formula for this submission.
func WithRequestedPriority(p Priority) ExecOption {
	return func(c *execConfig) { c.requested = &p }
}

// WithCallerInfo attaches diagnostic call-site metadata to this submission
// for admission/drain logging; it never affects scheduling.
func WithCallerInfo(opts ...asyncx.Option) ExecOption {
	return func(c *execConfig) { c.callerOpts = opts }
}
