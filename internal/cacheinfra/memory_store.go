package cacheinfra

import (
	"context"

	"github.com/viccon/sturdyc"

	"github.com/goliatone/go-function-cache/cache"
)

// MemoryStore is the non-persistent backend, meant for tests and for
// explicitly opting into bounded caching. Entries live in a sturdyc shard
// map with a capacity limit: once full, a percentage of entries is evicted,
// which the persistent backends never do. Expiry stays a read-time decision
// made by the orchestration layer, so the sturdyc-level TTL is pinned far
// beyond any entry's ExpiresAt.
type MemoryStore struct {
	client *sturdyc.Client[cache.Entry]
}

// NewMemoryStore creates a memory store bounded to capacity entries.
func NewMemoryStore(capacity, numShards, evictionPercentage int) *MemoryStore {
	return &MemoryStore{
		client: sturdyc.New[cache.Entry](capacity, numShards, 10*cache.Year, evictionPercentage),
	}
}

// Get returns the entry for key, or nil if absent or already evicted.
func (s *MemoryStore) Get(ctx context.Context, key string) (*cache.Entry, error) {
	entry, ok := s.client.Get(key)
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

// Put overwrites the entry for key.
func (s *MemoryStore) Put(ctx context.Context, key string, entry cache.Entry) error {
	s.client.Set(key, entry)
	return nil
}

// Delete removes the entry for key.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.client.Delete(key)
	return nil
}

// ForEach visits every live entry. Keys evicted between the scan and the
// lookup are skipped.
func (s *MemoryStore) ForEach(ctx context.Context, fn func(key string, entry cache.Entry) error) error {
	for _, key := range s.client.ScanKeys() {
		entry, ok := s.client.Get(key)
		if !ok {
			continue
		}
		if err := fn(key, entry); err != nil {
			return err
		}
	}
	return nil
}

// Close is a no-op; nothing outlives the process.
func (s *MemoryStore) Close() error {
	return nil
}
