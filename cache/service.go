package cache

import (
	"context"
	"time"
)

// KeySerializer builds a cache key from a function identity plus its call
// arguments. It is responsible for producing stable keys across calls and
// across process restarts.
type KeySerializer interface {
	// SerializeKey derives the key for identity invoked with the given
	// positional and named arguments. Positional order is significant;
	// named arguments contribute sorted by name, so the order they were
	// supplied in never matters.
	SerializeKey(identity string, args []any, named map[string]any) (string, error)
}

// Entry is a stored cache record: the encoded result plus its absolute
// expiration timestamp. Entries are only ever replaced wholesale, never
// partially updated.
type Entry struct {
	Value     []byte
	ExpiresAt time.Time
}

// Expired reports whether the entry is stale at the given instant.
func (e Entry) Expired(now time.Time) bool {
	return now.After(e.ExpiresAt)
}

// Store is the persistence collaborator backing one wrapped function.
// Implementations must be safe for concurrent use and must apply Put
// atomically: a concurrent Get never observes a partially written entry.
type Store interface {
	// Get returns the entry stored under key, or nil if absent. Expired
	// entries are returned as-is; staleness is a read-time decision made
	// by the caller, and stale entries stay in place until overwritten.
	Get(ctx context.Context, key string) (*Entry, error)

	// Put stores entry under key, overwriting any previous entry.
	Put(ctx context.Context, key string, entry Entry) error

	// Delete removes the entry stored under key. Deleting an absent key
	// is not an error.
	Delete(ctx context.Context, key string) error

	// ForEach visits every stored entry. An error returned by fn stops
	// the traversal and is returned to the caller. Concurrent mutation
	// during traversal must not corrupt the store.
	ForEach(ctx context.Context, fn func(key string, entry Entry) error) error

	// Close releases the resources held by the store. Operations on a
	// closed store fail.
	Close() error
}

// ComputeFn produces a fresh value when the cache cannot serve a call.
type ComputeFn[T any] func(ctx context.Context) (T, error)

// GetOrCompute runs the lookup-or-compute-and-store cycle for a single
// memoized call. On a hit that has not expired it returns the stored value
// without invoking compute. On a miss, or when the stored entry is stale,
// it invokes compute, persists the result with a fresh expiration of
// now+ttl, and returns it. Errors from compute propagate unchanged and
// nothing is written for that call.
func GetOrCompute[T any](ctx context.Context, store Store, key string, ttl time.Duration, compute ComputeFn[T]) (T, error) {
	return GetOrComputeAt(ctx, store, key, ttl, time.Now, compute)
}

// GetOrComputeAt is GetOrCompute with an explicit clock. Production callers
// should use GetOrCompute; the clock is injectable so expiration behavior
// can be tested without sleeping.
func GetOrComputeAt[T any](ctx context.Context, store Store, key string, ttl time.Duration, now func() time.Time, compute ComputeFn[T]) (T, error) {
	var zero T
	if now == nil {
		now = time.Now
	}

	entry, err := store.Get(ctx, key)
	if err != nil {
		return zero, err
	}
	if entry != nil && !entry.Expired(now()) {
		return DecodeValue[T](entry.Value)
	}

	// Miss, or stale. A stale entry stays in place until the overwrite
	// below; there is no delete-then-miss step visible to the caller.
	result, err := compute(ctx)
	if err != nil {
		return zero, err
	}

	encoded, err := EncodeValue(result)
	if err != nil {
		return zero, err
	}
	if err := store.Put(ctx, key, Entry{Value: encoded, ExpiresAt: now().Add(ttl)}); err != nil {
		return zero, err
	}
	return result, nil
}
