// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// It uses the caarlos0/env library for parsing environment variables into
// struct fields, with this module's own QueueConfig, SemaphoreConfig and
// BarrierConfig supplying the env-tagged defaults for the coordination
// primitives that want environment-overridable tuning.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/asyncx/core/config"
//
//	// Load with error handling
//	var qc config.QueueConfig
//	if err := config.Load(&qc); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure (useful for startup)
//	qc := config.MustLoad(&config.QueueConfig{})
//	q := queue.New(qc.MaxConcurrency, queue.WithDefaultPriority(queue.Priority(qc.DefaultPriority)))
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 config.SemaphoreConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 config.SemaphoreConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently, so QueueConfig, SemaphoreConfig
// and BarrierConfig each have their own cache entry.
package config
