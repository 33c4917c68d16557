package cacheinfra

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := DefaultConfig()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing dir",
			mutate:  func(c *Config) { c.Dir = "" },
			wantErr: true,
		},
		{
			name: "memory backend without dir",
			mutate: func(c *Config) {
				c.Backend = BackendMemory
				c.Dir = ""
			},
		},
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.Backend = "redis" },
			wantErr: true,
		},
		{
			name:    "zero default ttl",
			mutate:  func(c *Config) { c.DefaultTTL = 0 },
			wantErr: true,
		},
		{
			name:    "negative default ttl",
			mutate:  func(c *Config) { c.DefaultTTL = -time.Second },
			wantErr: true,
		},
		{
			name:    "zero capacity",
			mutate:  func(c *Config) { c.Capacity = 0 },
			wantErr: true,
		},
		{
			name:    "eviction percentage over 100",
			mutate:  func(c *Config) { c.EvictionPercentage = 150 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOpenStore_BackendSelection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dir = t.TempDir()

	tests := []struct {
		name    string
		backend string
		want    string
	}{
		{name: "bolt", backend: BackendBolt, want: "*cacheinfra.BoltStore"},
		{name: "file", backend: BackendFile, want: "*cacheinfra.FileStore"},
		{name: "memory", backend: BackendMemory, want: "*cacheinfra.MemoryStore"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cfg
			c.Backend = tt.backend
			c.Dir = filepath.Join(cfg.Dir, tt.name)

			store, err := OpenStore(c, "fn.cache")
			if err != nil {
				t.Fatalf("OpenStore() error = %v", err)
			}
			defer store.Close()

			if got := typeName(store); got != tt.want {
				t.Errorf("OpenStore() = %s, want %s", got, tt.want)
			}
		})
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *BoltStore:
		return "*cacheinfra.BoltStore"
	case *FileStore:
		return "*cacheinfra.FileStore"
	case *MemoryStore:
		return "*cacheinfra.MemoryStore"
	default:
		return "unknown"
	}
}
