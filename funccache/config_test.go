package funccache

import (
	"testing"
	"time"

	"github.com/goliatone/go-function-cache/cache"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Backend != BackendBolt {
		t.Errorf("Backend = %v, want %v", cfg.Backend, BackendBolt)
	}
	if cfg.DefaultTTL != cache.Year {
		t.Errorf("DefaultTTL = %v, want %v", cfg.DefaultTTL, cache.Year)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default is valid", func(*Config) {}, false},
		{"memory backend", func(c *Config) { c.Backend = BackendMemory; c.Dir = "" }, false},
		{"file backend", func(c *Config) { c.Backend = BackendFile }, false},
		{"missing dir", func(c *Config) { c.Dir = "" }, true},
		{"unknown backend", func(c *Config) { c.Backend = "redis" }, true},
		{"zero ttl", func(c *Config) { c.DefaultTTL = 0 }, true},
		{"negative ttl", func(c *Config) { c.DefaultTTL = -time.Second }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Backend = "redis"

	if _, err := New(cfg, nil); err == nil {
		t.Error("New() with unknown backend should fail")
	}
}
