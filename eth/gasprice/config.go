package gasprice

import (
	"bufio"
	"math"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/naoina/toml"
	"github.com/pkg/errors"

	"github.com/DayOfShah/fee-suggestions/params"
)

var DefaultConfig = Config{
	MaxTimeFactor:       params.MaxTimeFactor,
	SampleMin:           params.SampleMin,
	SampleMax:           params.SampleMax,
	PendingBaseFeeRatio: params.PendingBaseFeeRatio,
	FullBlockRatio:      params.FullBlockRatio,
	PriorityFeeBlocks:   params.PriorityFeeBlocks,
	OutlierCeiling:      params.OutlierCeiling,
	Trend: TrendConfig{
		Falling:     params.TrendFalling,
		Raising:     params.TrendRaising,
		Surging:     params.TrendSurging,
		MedianSlope: params.TrendMedianSlope,
	},
	MinPriorityFee: PriorityFeeConfig{
		Urgent: params.UrgentMinPriorityFee,
		Fast:   params.FastMinPriorityFee,
		Normal: params.NormalMinPriorityFee,
	},
}

type Config struct {
	MaxTimeFactor       int     `toml:",omitempty"` // longest smoothing horizon in blocks
	SampleMin           float64 `toml:",omitempty"`
	SampleMax           float64 `toml:",omitempty"`
	PendingBaseFeeRatio float64 `toml:",omitempty"` // applied to the pending block's base fee
	FullBlockRatio      float64 `toml:",omitempty"` // gas used ratio above which a block counts as full

	PriorityFeeBlocks int     `toml:",omitempty"` // trailing reward records used for priority fees
	OutlierCeiling    float64 `toml:",omitempty"` // gwei

	Trend          TrendConfig
	MinPriorityFee PriorityFeeConfig // gwei floors per speed
}

// TrendConfig holds the base fee trend thresholds. The ratios compare the
// newest long window group's max and min against its median.
type TrendConfig struct {
	Falling     float64 `toml:",omitempty"`
	Raising     float64 `toml:",omitempty"`
	Surging     float64 `toml:",omitempty"`
	MedianSlope float64 `toml:",omitempty"` // gwei per group of the short window
}

type PriorityFeeConfig struct {
	Urgent float64 `toml:",omitempty"`
	Fast   float64 `toml:",omitempty"`
	Normal float64 `toml:",omitempty"`
}

// LoadConfig decodes a TOML file over cfg; keys missing from the file keep
// their current values.
func LoadConfig(file string, cfg *Config) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := toml.NewDecoder(bufio.NewReader(f)).Decode(cfg); err != nil {
		return errors.Wrap(err, file)
	}
	return nil
}

func (c *Config) sanity() Config {
	cfg := *c
	def := DefaultConfig
	if cfg.MaxTimeFactor < 1 {
		log.Info("Config sanity MaxTimeFactor", "old", cfg.MaxTimeFactor, "new", def.MaxTimeFactor)
		cfg.MaxTimeFactor = def.MaxTimeFactor
	}
	if !(cfg.SampleMin >= 0 && cfg.SampleMin < cfg.SampleMax && cfg.SampleMax <= 1) {
		log.Info("Config sanity SampleMin/SampleMax", "old", []float64{cfg.SampleMin, cfg.SampleMax}, "new", []float64{def.SampleMin, def.SampleMax})
		cfg.SampleMin, cfg.SampleMax = def.SampleMin, def.SampleMax
	}
	if !(cfg.PendingBaseFeeRatio >= 1) {
		log.Info("Config sanity PendingBaseFeeRatio", "old", cfg.PendingBaseFeeRatio, "new", def.PendingBaseFeeRatio)
		cfg.PendingBaseFeeRatio = def.PendingBaseFeeRatio
	}
	if !(cfg.FullBlockRatio > 0 && cfg.FullBlockRatio <= 1) {
		log.Info("Config sanity FullBlockRatio", "old", cfg.FullBlockRatio, "new", def.FullBlockRatio)
		cfg.FullBlockRatio = def.FullBlockRatio
	}
	if cfg.PriorityFeeBlocks < 1 {
		log.Info("Config sanity PriorityFeeBlocks", "old", cfg.PriorityFeeBlocks, "new", def.PriorityFeeBlocks)
		cfg.PriorityFeeBlocks = def.PriorityFeeBlocks
	}
	if !(cfg.OutlierCeiling > 0) {
		log.Info("Config sanity OutlierCeiling", "old", cfg.OutlierCeiling, "new", def.OutlierCeiling)
		cfg.OutlierCeiling = def.OutlierCeiling
	}
	cfg.Trend = cfg.Trend.sanity(def.Trend)
	cfg.MinPriorityFee = cfg.MinPriorityFee.sanity(def.MinPriorityFee)
	return cfg
}

func (c TrendConfig) sanity(def TrendConfig) TrendConfig {
	if !(c.Falling > 0 && c.Falling < 1) {
		log.Info("Config sanity Trend.Falling", "old", c.Falling, "new", def.Falling)
		c.Falling = def.Falling
	}
	if !(c.Raising > 1 && c.Surging >= c.Raising) {
		log.Info("Config sanity Trend.Raising/Trend.Surging", "old", []float64{c.Raising, c.Surging}, "new", []float64{def.Raising, def.Surging})
		c.Raising, c.Surging = def.Raising, def.Surging
	}
	if !(c.MedianSlope < 0) || math.IsInf(c.MedianSlope, 0) {
		log.Info("Config sanity Trend.MedianSlope", "old", c.MedianSlope, "new", def.MedianSlope)
		c.MedianSlope = def.MedianSlope
	}
	return c
}

func (c PriorityFeeConfig) sanity(def PriorityFeeConfig) PriorityFeeConfig {
	if !(c.Urgent > 0) {
		log.Info("Config sanity MinPriorityFee.Urgent", "old", c.Urgent, "new", def.Urgent)
		c.Urgent = def.Urgent
	}
	if !(c.Fast > 0) {
		log.Info("Config sanity MinPriorityFee.Fast", "old", c.Fast, "new", def.Fast)
		c.Fast = def.Fast
	}
	if !(c.Normal > 0) {
		log.Info("Config sanity MinPriorityFee.Normal", "old", c.Normal, "new", def.Normal)
		c.Normal = def.Normal
	}
	return c
}
