package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"zero max chunk size", func(c *Config) { c.MaxChunkSize = 0 }, true},
		{"negative overlap", func(c *Config) { c.OverlapSize = -1 }, true},
		{"overlap equals chunk size", func(c *Config) { c.OverlapSize = c.MaxChunkSize }, true},
		{"negative threshold", func(c *Config) { c.SimilarityThreshold = -0.1 }, true},
		{"threshold above one is allowed", func(c *Config) { c.SimilarityThreshold = 1.5 }, false},
		{"zero workers", func(c *Config) { c.Workers = 0 }, true},
		{"zero timeout", func(c *Config) { c.CapabilityTimeout = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
