package funccache

import (
	"time"

	"github.com/goliatone/go-function-cache/internal/cacheinfra"
)

// Backend names accepted by Config.Backend.
const (
	BackendBolt   = cacheinfra.BackendBolt
	BackendFile   = cacheinfra.BackendFile
	BackendMemory = cacheinfra.BackendMemory
)

// Config exposes store configuration options for consumers of the funccache
// package.
type Config struct {
	// Dir is the directory where per-function store files live. Store
	// names derive deterministically from the function identity, so the
	// same function reattaches to the same file across process restarts.
	Dir string

	// Backend selects the persistence engine. BackendBolt is the default;
	// BackendMemory is non-persistent and must be chosen explicitly.
	Backend string

	// DefaultTTL governs expiration for wrappers created with ttl <= 0.
	DefaultTTL time.Duration

	// Capacity, NumShards and EvictionPercentage tune the memory backend.
	// The persistent backends are unbounded and ignore them.
	Capacity           int
	NumShards          int
	EvictionPercentage int
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() Config {
	return convertFromInternal(cacheinfra.DefaultConfig())
}

// Validate checks whether the configuration values are valid.
func (c Config) Validate() error {
	return c.toInternal().Validate()
}

func (c Config) toInternal() cacheinfra.Config {
	return cacheinfra.Config{
		Dir:                c.Dir,
		Backend:            c.Backend,
		DefaultTTL:         c.DefaultTTL,
		Capacity:           c.Capacity,
		NumShards:          c.NumShards,
		EvictionPercentage: c.EvictionPercentage,
	}
}

func convertFromInternal(cfg cacheinfra.Config) Config {
	return Config{
		Dir:                cfg.Dir,
		Backend:            cfg.Backend,
		DefaultTTL:         cfg.DefaultTTL,
		Capacity:           cfg.Capacity,
		NumShards:          cfg.NumShards,
		EvictionPercentage: cfg.EvictionPercentage,
	}
}
