package gasprice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigSanity(t *testing.T) {
	assert.Equal(t, DefaultConfig, (&Config{}).sanity())
	assert.Equal(t, DefaultConfig, (&DefaultConfig).sanity())

	cfg := DefaultConfig
	cfg.MaxTimeFactor = 4
	cfg.SampleMin, cfg.SampleMax = 0.2, 0.5
	cfg.Trend.MedianSlope = -2
	cfg.MinPriorityFee.Normal = 0.5
	assert.Equal(t, cfg, (&cfg).sanity())

	var cases = []struct {
		name  string
		apply func(c *Config)
	}{
		{"negative time factor", func(c *Config) { c.MaxTimeFactor = -3 }},
		{"inverted sample range", func(c *Config) { c.SampleMin, c.SampleMax = 0.4, 0.2 }},
		{"sample max above one", func(c *Config) { c.SampleMax = 1.5 }},
		{"pending ratio below one", func(c *Config) { c.PendingBaseFeeRatio = 0.5 }},
		{"full block ratio above one", func(c *Config) { c.FullBlockRatio = 2 }},
		{"zero priority blocks", func(c *Config) { c.PriorityFeeBlocks = 0 }},
		{"negative ceiling", func(c *Config) { c.OutlierCeiling = -1 }},
		{"falling above one", func(c *Config) { c.Trend.Falling = 1.2 }},
		{"surging below raising", func(c *Config) { c.Trend.Surging = 1.1 }},
		{"positive median slope", func(c *Config) { c.Trend.MedianSlope = 3 }},
		{"negative floor", func(c *Config) { c.MinPriorityFee.Fast = -1 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig
			c.apply(&cfg)
			assert.Equal(t, DefaultConfig, (&cfg).sanity())
		})
	}
}

func TestLoadConfig(t *testing.T) {
	cfg := DefaultConfig
	require.NoError(t, LoadConfig("testdata/config.toml", &cfg))

	expect := DefaultConfig
	expect.MaxTimeFactor = 10
	expect.SampleMin, expect.SampleMax = 0.05, 0.25
	expect.PriorityFeeBlocks = 20
	expect.Trend.Surging = 1.8
	expect.MinPriorityFee.Urgent = 3
	assert.Equal(t, expect, cfg)

	s := NewSuggester(cfg)
	assert.Equal(t, expect, s.Config())
}

func TestLoadConfigErrors(t *testing.T) {
	cfg := DefaultConfig
	assert.Error(t, LoadConfig("testdata/missing.toml", &cfg))

	err := LoadConfig("testdata/config_unknown.toml", &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config_unknown.toml")
}
