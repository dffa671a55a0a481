package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache keeps one parsed value per configuration type.
type cache struct {
	mu     sync.RWMutex
	values map[reflect.Type]any
}

var (
	globalCache = &cache{values: make(map[reflect.Type]any)}

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v using `env` struct tags.
// The first call loads the default .env file if it exists. Each
// configuration type is parsed once; later calls return the cached copy.
//
// Example:
//
//	type Policy struct {
//		RequiredAge uint8 `env:"DRIVER_REQUIRED_AGE" envDefault:"18"`
//	}
//
//	var p Policy
//	if err := config.Load(&p); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// Missing .env is fine.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeKey[T]()

	globalCache.mu.RLock()
	cached, ok := globalCache.values[key]
	globalCache.mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	// Another goroutine may have won the race.
	if cached, ok := globalCache.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	globalCache.values[key] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReload drops the cached value for T and parses the environment again.
func ForceReload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	globalCache.mu.Lock()
	delete(globalCache.values, typeKey[T]())
	globalCache.mu.Unlock()

	return Load(v)
}

// ResetCache drops every cached configuration. Intended for tests.
func ResetCache() {
	globalCache.mu.Lock()
	globalCache.values = make(map[reflect.Type]any)
	globalCache.mu.Unlock()
}

func typeKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
