package funccache

import (
	"context"
	"path/filepath"
	"time"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/goliatone/go-function-cache/cache"
	"github.com/goliatone/go-function-cache/internal/cacheinfra"
)

// StoreSuffix is appended to the sanitized function identity to form the
// store name on disk.
const StoreSuffix = ".cache"

// Cache owns the per-function stores for a set of wrapped functions. Each
// function identity maps to its own store, opened lazily on the first call
// and registered so that wrapping the same function twice reattaches to the
// same handle. Close releases every open store; the Cache stays usable and
// stores reopen on the next call.
type Cache struct {
	config Config
	keys   cache.KeySerializer
	stores *xsync.MapOf[string, cache.Store]
	now    func() time.Time
}

// New creates a Cache with the provided configuration and key serializer.
// A nil serializer falls back to the default reflection-based one.
func New(cfg Config, keys cache.KeySerializer) (*Cache, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if keys == nil {
		keys = cache.NewDefaultKeySerializer()
	}
	return &Cache{
		config: cfg,
		keys:   keys,
		stores: xsync.NewMapOf[string, cache.Store](),
		now:    time.Now,
	}, nil
}

// Config returns a copy of the configuration used by this Cache.
func (c *Cache) Config() Config {
	return c.config
}

// Key computes the store key for identity invoked with the given arguments.
// It is exported so operators can locate a specific entry for manual
// invalidation without clearing the whole store.
func (c *Cache) Key(identity string, args []any, named map[string]any) (string, error) {
	return c.keys.SerializeKey(identity, args, named)
}

// StoreName returns the on-disk name of the store backing the given
// function identity. The name is derived deterministically, so a store can
// be located from the qualified function name alone.
func StoreName(identity string) string {
	return toSnake(identity) + StoreSuffix
}

// StorePath returns the filesystem path of the store backing identity.
func (c *Cache) StorePath(identity string) string {
	return filepath.Join(c.config.Dir, StoreName(identity))
}

// Store returns the store backing the given function identity, opening it
// if needed. The returned store supports ForEach and Delete for manual
// inspection and invalidation; it remains owned by the Cache and is closed
// by Cache.Close.
func (c *Cache) Store(identity string) (cache.Store, error) {
	name := StoreName(identity)
	if store, ok := c.stores.Load(name); ok {
		return store, nil
	}

	store, err := cacheinfra.OpenStore(c.config.toInternal(), name)
	if err != nil {
		return nil, err
	}

	actual, loaded := c.stores.LoadOrStore(name, store)
	if loaded {
		// Lost the race; keep the handle another caller registered.
		store.Close()
		return actual, nil
	}
	return store, nil
}

// Invalidate removes the entry for identity invoked with the given
// arguments, so the next call re-executes the function.
func (c *Cache) Invalidate(ctx context.Context, identity string, args []any, named map[string]any) error {
	key, err := c.Key(identity, args, named)
	if err != nil {
		return err
	}
	store, err := c.Store(identity)
	if err != nil {
		return err
	}
	return store.Delete(ctx, key)
}

// Close closes every store opened by this Cache and empties the registry.
// The first close failure is reported after all stores were attempted.
func (c *Cache) Close() error {
	var firstErr error
	c.stores.Range(func(name string, store cache.Store) bool {
		if err := store.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		c.stores.Delete(name)
		return true
	})
	return firstErr
}

// ttlFor resolves the decoration-time TTL, falling back to the configured
// default when the wrapper was created without one.
func (c *Cache) ttlFor(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return c.config.DefaultTTL
	}
	return ttl
}

// do runs one memoized call: derive the key, open the function's store,
// and hand the lookup-or-compute cycle to the cache package.
func do[T any](ctx context.Context, c *Cache, identity string, ttl time.Duration, call Call, compute cache.ComputeFn[T]) (T, error) {
	var zero T

	key, err := c.keys.SerializeKey(identity, call.Args, call.Named)
	if err != nil {
		return zero, err
	}

	store, err := c.Store(identity)
	if err != nil {
		return zero, err
	}

	return cache.GetOrComputeAt(ctx, store, key, c.ttlFor(ttl), c.now, compute)
}
