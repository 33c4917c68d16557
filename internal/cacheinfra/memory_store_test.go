package cacheinfra

import (
	"context"
	"testing"
	"time"

	"github.com/goliatone/go-function-cache/cache"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(100, 4, 10)

	expiresAt := time.Now().Add(time.Hour)
	if err := store.Put(ctx, "k", cache.Entry{Value: []byte("v"), ExpiresAt: expiresAt}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got == nil || string(got.Value) != "v" {
		t.Fatalf("Get() = %v, want v", got)
	}
	if !got.ExpiresAt.Equal(expiresAt) {
		t.Errorf("ExpiresAt = %v, want %v", got.ExpiresAt, expiresAt)
	}

	if missing, err := store.Get(ctx, "other"); err != nil || missing != nil {
		t.Errorf("Get(other) = (%v, %v), want (nil, nil)", missing, err)
	}
}

func TestMemoryStore_DeleteAndForEach(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(100, 4, 10)

	for _, k := range []string{"a", "b"} {
		if err := store.Put(ctx, k, cache.Entry{Value: []byte(k), ExpiresAt: time.Now()}); err != nil {
			t.Fatalf("Put(%s) error = %v", k, err)
		}
	}
	if err := store.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	seen := map[string]bool{}
	if err := store.ForEach(ctx, func(key string, entry cache.Entry) error {
		seen[key] = true
		return nil
	}); err != nil {
		t.Fatalf("ForEach() error = %v", err)
	}
	if seen["a"] || !seen["b"] {
		t.Errorf("seen = %v, want only b", seen)
	}
}

func TestMemoryStore_KeepsExpiredEntries(t *testing.T) {
	// The memory backend is bounded but must not expire entries on its
	// own; staleness stays a read-time decision of the orchestration.
	ctx := context.Background()
	store := NewMemoryStore(100, 4, 10)

	stale := cache.Entry{Value: []byte("old"), ExpiresAt: time.Now().Add(-time.Hour)}
	if err := store.Put(ctx, "k", stale); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got == nil {
		t.Fatal("expired entry must still be returned")
	}
}
