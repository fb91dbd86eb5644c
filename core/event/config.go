package event

import "github.com/dmitrymomot/asyncx/core/config"

// NewSemaphoreFromConfig constructs a Semaphore the way NewSemaphore does,
// except its starting value and limit are loaded from config.SemaphoreConfig
// (environment variables ASYNCX_SEMAPHORE_VALUE and ASYNCX_SEMAPHORE_LIMIT)
// instead of being passed explicitly.
func NewSemaphoreFromConfig(opts ...Option) *Semaphore {
	cfg := config.MustLoad(&config.SemaphoreConfig{})
	return NewSemaphore(cfg.Value, cfg.Limit, opts...)
}

// NewBarrierFromConfig constructs a Barrier the way NewBarrier does, except
// its arrival limit is loaded from config.BarrierConfig (environment
// variable ASYNCX_BARRIER_LIMIT) instead of being passed explicitly.
func NewBarrierFromConfig(opts ...Option) *Barrier {
	cfg := config.MustLoad(&config.BarrierConfig{})
	return NewBarrier(cfg.Limit, opts...)
}
