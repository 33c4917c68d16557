// Package funccache wraps functions with persistent, TTL-bounded
// memoization.
//
// # Overview
//
// This package implements the decorator pattern for plain functions: a
// wrapped function first consults a per-function persistent store, executes
// only on a miss or after its entry expired, and persists fresh results so
// repeated calls return the cached value even across separate process runs.
// The intended use is expensive, deterministic-enough operations whose
// arguments and results can be serialized, such as fetching and parsing
// remote documents.
//
// # Key Features
//
//   - **Type-safe wrapping**: Wrap0 through Wrap3 and WrapCall use generics
//     to keep the wrapped signature intact
//   - **Durable results**: each function gets its own store file, reopened
//     by qualified name after a restart
//   - **Per-function TTL**: fixed at wrap time, with duration literals from
//     the cache package (cache.Hour, cache.Year, ...)
//   - **Pluggable key strategy**: configurable via cache.KeySerializer
//   - **Manual invalidation**: compute a key with Cache.Key and delete it,
//     or walk a store with ForEach
//
// # Basic Usage
//
//	fns, err := funccache.New(funccache.DefaultConfig(), nil)
//	if err != nil {
//		return err
//	}
//	defer fns.Close()
//
//	fetch := funccache.Wrap1(fns, funccache.Identity(fetchDocument), cache.Day, fetchDocument)
//
//	// First call executes fetchDocument; later calls inside the TTL
//	// window, in this or any later process, return the stored result.
//	doc, err := fetch(ctx, "https://example.com/feed")
//
// # Caching Behavior
//
// Each call of a wrapped function follows the read-through cycle:
//
//  1. Derive the key from the function identity and arguments
//  2. Look the key up in the function's store
//  3. On a hit that has not expired, return the stored value
//  4. Otherwise execute the function with the original arguments
//  5. Store the result with a fresh expiration of now+TTL
//  6. Return the result
//
// Errors from the wrapped function propagate unchanged and nothing is
// written for that call. The cache never retries, logs, or swallows.
//
// # Expiration and Growth
//
// Expiry is purely a read-time comparison: a stale entry stays on disk
// until the next call overwrites it, and nothing sweeps the store in the
// background. A function that sees many distinct argument combinations
// therefore grows its store until entries are removed by hand. That is a
// documented trade-off, not a leak.
//
// # Concurrency
//
// Concurrent callers missing on the same key may each execute the wrapped
// function and each overwrite the entry; last write wins. For the intended
// use of idempotent computations the duplicate work is wasted but not
// incorrect. Store backends apply each write atomically, so readers never
// observe a partial entry.
//
// # Manual Invalidation
//
// To drop a single stale entry without clearing the whole store:
//
//	err := fns.Invalidate(ctx, identity, []any{42}, nil)
//
// or locate it by hand:
//
//	key, _ := fns.Key(identity, []any{42}, nil)
//	store, _ := fns.Store(identity)
//	store.ForEach(ctx, func(k string, e cache.Entry) error { ... })
//	store.Delete(ctx, key)
//
// # Integration with Dependency Injection
//
// This package is designed to work with the dependency injection container
// provided in pkg/di:
//
//	container, err := di.NewContainerWithDefaults()
//	if err != nil {
//		return err
//	}
//	fetch := di.Memoize1(container, "feeds.FetchDocument", cache.Day, fetchDocument)
//
// # See Also
//
// For key serialization rules and the store contract, see the cache
// package.
package funccache
