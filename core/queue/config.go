package queue

import envconfig "github.com/dmitrymomot/asyncx/core/config"

// NewFromConfig constructs a TaskQueue the way New does, except
// maxConcurrency and the default priority are loaded from
// envconfig.QueueConfig (environment variables ASYNCX_QUEUE_MAX_CONCURRENCY
// and ASYNCX_QUEUE_DEFAULT_PRIORITY) instead of being passed explicitly.
// opts can still override the logger or re-override the default priority.
func NewFromConfig(opts ...Option) *TaskQueue {
	cfg := envconfig.MustLoad(&envconfig.QueueConfig{})
	all := append([]Option{WithDefaultPriority(Priority(cfg.DefaultPriority))}, opts...)
	return New(cfg.MaxConcurrency, all...)
}
