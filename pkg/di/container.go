package di

import (
	"context"
	"time"

	"github.com/goliatone/go-function-cache/cache"
	"github.com/goliatone/go-function-cache/funccache"
)

// Container provides dependency injection for memoization components.
// It manages singleton instances of the function cache and key serializer,
// and provides factory helpers for wrapping functions.
type Container struct {
	fns           *funccache.Cache
	keySerializer cache.KeySerializer
	config        funccache.Config
}

// NewContainer creates a new DI container with the provided configuration.
// It sets up the default key serializer for consistent key generation and
// initializes the function cache that owns the per-function stores.
func NewContainer(config funccache.Config) (*Container, error) {
	keySerializer := cache.NewDefaultKeySerializer()

	fns, err := funccache.New(config, keySerializer)
	if err != nil {
		return nil, err
	}

	return &Container{
		fns:           fns,
		keySerializer: keySerializer,
		config:        config,
	}, nil
}

// NewContainerWithDefaults creates a new DI container using default
// configuration. This is a convenience constructor for typical use cases
// where custom configuration is not required.
func NewContainerWithDefaults() (*Container, error) {
	return NewContainer(funccache.DefaultConfig())
}

// Cache returns the singleton function cache instance. This allows access
// to per-function stores for manual inspection and invalidation.
func (c *Container) Cache() *funccache.Cache {
	return c.fns
}

// KeySerializer returns the singleton key serializer instance.
func (c *Container) KeySerializer() cache.KeySerializer {
	return c.keySerializer
}

// Config returns a copy of the configuration used by this container.
func (c *Container) Config() funccache.Config {
	return c.config
}

// Close releases every store the container's cache has opened.
func (c *Container) Close() error {
	return c.fns.Close()
}

// Memoize0 wraps a zero-argument function with persistent memoization.
//
// Since Go methods cannot have type parameters, the Memoize helpers are
// provided as package-level functions.
// Example: Memoize1[string, Document](container, identity, ttl, fetch)
func Memoize0[R any](container *Container, identity string, ttl time.Duration, fn func(context.Context) (R, error)) func(context.Context) (R, error) {
	return funccache.Wrap0(container.fns, identity, ttl, fn)
}

// Memoize1 wraps a one-argument function with persistent memoization.
func Memoize1[A, R any](container *Container, identity string, ttl time.Duration, fn func(context.Context, A) (R, error)) func(context.Context, A) (R, error) {
	return funccache.Wrap1(container.fns, identity, ttl, fn)
}

// Memoize2 wraps a two-argument function with persistent memoization.
func Memoize2[A, B, R any](container *Container, identity string, ttl time.Duration, fn func(context.Context, A, B) (R, error)) func(context.Context, A, B) (R, error) {
	return funccache.Wrap2(container.fns, identity, ttl, fn)
}

// Memoize3 wraps a three-argument function with persistent memoization.
func Memoize3[A, B, C, R any](container *Container, identity string, ttl time.Duration, fn func(context.Context, A, B, C) (R, error)) func(context.Context, A, B, C) (R, error) {
	return funccache.Wrap3(container.fns, identity, ttl, fn)
}

// MemoizeCall wraps a Call-receiving function with persistent memoization,
// for variable argument lists and named arguments.
func MemoizeCall[R any](container *Container, identity string, ttl time.Duration, fn func(context.Context, funccache.Call) (R, error)) func(context.Context, funccache.Call) (R, error) {
	return funccache.WrapCall(container.fns, identity, ttl, fn)
}
