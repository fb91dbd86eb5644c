package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
)

var cache sync.Map // reflect.Type -> any (a *T already loaded)

// Load populates cfg from environment variables using caarlos0/env struct
// tags, caching the result per concrete type so repeated calls for the
// same *T return the value loaded on the first call instead of
// re-parsing the environment.
func Load[T any](cfg *T) error {
	t := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(t); ok {
		*cfg = *cached.(*T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", t, err)
	}

	stored := *cfg
	cache.Store(t, &stored)
	return nil
}

// MustLoad is Load, panicking on failure. Intended for startup code paths
// where a misconfigured environment should fail fast.
func MustLoad[T any](cfg *T) *T {
	if err := Load(cfg); err != nil {
		panic(err)
	}
	return cfg
}
