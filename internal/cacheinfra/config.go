package cacheinfra

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-function-cache/cache"
)

// Backend names understood by Config.Backend.
const (
	// BackendBolt stores all entries of a function in a single bbolt file.
	BackendBolt = "bolt"

	// BackendFile stores each entry in its own file, which tolerates
	// concurrent writers from separate processes better than a single
	// database file.
	BackendFile = "file"

	// BackendMemory keeps entries in a bounded in-process shard map. It is
	// non-persistent and must be selected explicitly.
	BackendMemory = "memory"
)

// Config holds the store configuration shared by every backend.
type Config struct {
	// Dir is the directory holding the per-function store files.
	// The memory backend ignores it.
	Dir string

	// Backend selects the persistence engine.
	Backend string

	// DefaultTTL governs expiration for wrappers created without an
	// explicit TTL. Must be greater than 0.
	DefaultTTL time.Duration

	// Capacity is the maximum number of entries the memory backend holds
	// before evicting. The persistent backends are unbounded and ignore it.
	Capacity int

	// NumShards determines memory backend sharding for concurrent access.
	NumShards int

	// EvictionPercentage specifies what percentage of memory backend
	// entries to evict when capacity is reached. Must be between 1-100.
	EvictionPercentage int
}

// DefaultConfig returns a Config with sensible defaults for most use cases.
func DefaultConfig() Config {
	return Config{
		Dir:                ".",
		Backend:            BackendBolt,
		DefaultTTL:         cache.Year,
		Capacity:           10000,
		NumShards:          256,
		EvictionPercentage: 10,
	}
}

// Validate checks if the configuration values are valid.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Dir, validation.Required.When(c.Backend != BackendMemory)),
		validation.Field(&c.Backend, validation.Required, validation.In(BackendBolt, BackendFile, BackendMemory)),
		validation.Field(&c.DefaultTTL, validation.Required, validation.Min(time.Duration(1))),
		validation.Field(&c.Capacity, validation.Required, validation.Min(1)),
		validation.Field(&c.NumShards, validation.Required, validation.Min(1)),
		validation.Field(&c.EvictionPercentage, validation.Required, validation.Min(1), validation.Max(100)),
	)
}

// OpenStore opens the named store using the configured backend. The name is
// interpreted relative to Config.Dir for the persistent backends.
func OpenStore(cfg Config, name string) (cache.Store, error) {
	switch cfg.Backend {
	case BackendFile:
		return NewFileStore(storePath(cfg.Dir, name))
	case BackendMemory:
		return NewMemoryStore(cfg.Capacity, cfg.NumShards, cfg.EvictionPercentage), nil
	default:
		return NewBoltStore(storePath(cfg.Dir, name))
	}
}
