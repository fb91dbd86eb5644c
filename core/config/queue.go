package config

// QueueConfig tunes a core/queue.TaskQueue's environment-overridable
// defaults.
type QueueConfig struct {
	// MaxConcurrency bounds how many admitted operations may run at once.
	// 0 means effectively unbounded (only Block/Barrier holders serialize).
	MaxConcurrency int `env:"ASYNCX_QUEUE_MAX_CONCURRENCY" envDefault:"0"`
	// DefaultPriority is the queueDefault candidate in the priority
	// selection formula for submissions that supply no requested priority.
	DefaultPriority int8 `env:"ASYNCX_QUEUE_DEFAULT_PRIORITY" envDefault:"50"`
}

// SemaphoreConfig tunes a core/event.Semaphore's environment-overridable
// defaults.
type SemaphoreConfig struct {
	// Value is the number of tokens a semaphore starts with.
	Value int `env:"ASYNCX_SEMAPHORE_VALUE" envDefault:"1"`
	// Limit is the maximum number of tokens Signal may replenish up to.
	Limit int `env:"ASYNCX_SEMAPHORE_LIMIT" envDefault:"1"`
}

// BarrierConfig tunes a core/event.Barrier's environment-overridable
// participant count default.
type BarrierConfig struct {
	// Limit is the number of arrivals required to release a round.
	Limit int `env:"ASYNCX_BARRIER_LIMIT" envDefault:"2"`
}
