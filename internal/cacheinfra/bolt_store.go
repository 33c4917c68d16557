package cacheinfra

import (
	"context"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/goliatone/go-function-cache/cache"
)

var entriesBucket = []byte("entries")

// BoltStore persists cache entries in a single bbolt file. Every Put runs
// in its own write transaction, so a concurrent Get never observes a
// partially written entry, and bbolt's file lock coordinates access from
// multiple handles.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens or creates the store file at path, creating the parent
// directory if missing. An open failure surfaces as
// *cache.StoreUnavailableError; there is no fallback to uncached execution.
func NewBoltStore(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, &cache.StoreUnavailableError{Path: path, Err: err}
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, &cache.StoreUnavailableError{Path: path, Err: err}
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(entriesBucket)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, &cache.StoreUnavailableError{Path: path, Err: err}
	}
	return &BoltStore{db: db}, nil
}

// Get returns the entry for key, or nil if absent. Expired entries are
// returned untouched.
func (s *BoltStore) Get(ctx context.Context, key string) (*cache.Entry, error) {
	var entry *cache.Entry
	if err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(entriesBucket).Get([]byte(key))
		if raw == nil {
			return nil
		}
		decoded, err := decodeRecord(raw)
		if err != nil {
			return err
		}
		entry = &decoded
		return nil
	}); err != nil {
		return nil, err
	}
	return entry, nil
}

// Put overwrites the entry for key.
func (s *BoltStore) Put(ctx context.Context, key string, entry cache.Entry) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(entriesBucket).Put([]byte(key), encodeRecord(entry))
	})
}

// Delete removes the entry for key.
func (s *BoltStore) Delete(ctx context.Context, key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(entriesBucket).Delete([]byte(key))
	})
}

// ForEach visits every stored entry inside a read transaction.
func (s *BoltStore) ForEach(ctx context.Context, fn func(key string, entry cache.Entry) error) error {
	return s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(entriesBucket).ForEach(func(k, v []byte) error {
			entry, err := decodeRecord(v)
			if err != nil {
				return err
			}
			return fn(string(k), entry)
		})
	})
}

// Close closes the underlying database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
