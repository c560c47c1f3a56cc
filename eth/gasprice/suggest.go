package gasprice

import (
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"

	"github.com/DayOfShah/fee-suggestions/common/unit"
	"github.com/DayOfShah/fee-suggestions/params"
)

var (
	ErrNoBaseFees      = errors.New("fee history has no base fees")
	ErrNoRewards       = errors.New("fee history has no rewards")
	ErrNoRewardSamples = errors.New("no rewards left after removing outliers")
)

// BaseFeeSuggestion is the recommended max base fee for a new transaction.
// Amounts are in wei.
type BaseFeeSuggestion struct {
	MaxBaseFee     *big.Int `json:"maxBaseFee"`
	CurrentBaseFee *big.Int `json:"currentBaseFee"`
	Trend          Trend    `json:"trend"`
	// ByTimeFactor holds the suggestion per smoothing horizon, indexed by
	// time factor. Shorter horizons never suggest less than longer ones.
	ByTimeFactor []*big.Int `json:"byTimeFactor"`
}

type PriorityFees struct {
	Urgent *big.Int `json:"urgent"`
	Fast   *big.Int `json:"fast"`
	Normal *big.Int `json:"normal"`
}

// PriorityFeeSuggestion is the recommended max priority fee per speed, in wei.
type PriorityFeeSuggestion struct {
	MaxPriorityFees PriorityFees `json:"maxPriorityFeeSuggestions"`
	// ConfirmationTimeByPriorityFee maps an expected confirmation time in
	// seconds to the tip that achieves it.
	ConfirmationTimeByPriorityFee map[int]*big.Int `json:"confirmationTimeByPriorityFee"`
}

type FeeSuggestions struct {
	BaseFee     *BaseFeeSuggestion     `json:"baseFee"`
	PriorityFee *PriorityFeeSuggestion `json:"priorityFee"`
}

// Suggester derives fee suggestions from fee histories supplied by the caller.
// It holds no state besides its configuration and is safe for concurrent use.
type Suggester struct {
	cfg Config
}

var defaultSuggester = &Suggester{cfg: DefaultConfig}

// NewSuggester returns a Suggester using cfg, with invalid values replaced by
// their defaults.
func NewSuggester(cfg Config) *Suggester {
	cfg = (&cfg).sanity()
	log.Info("Fee suggester created", "maxTimeFactor", cfg.MaxTimeFactor, "sampleMin", cfg.SampleMin, "sampleMax", cfg.SampleMax,
		"priorityFeeBlocks", cfg.PriorityFeeBlocks, "outlierCeiling", cfg.OutlierCeiling,
		"falling", cfg.Trend.Falling, "raising", cfg.Trend.Raising, "surging", cfg.Trend.Surging, "medianSlope", cfg.Trend.MedianSlope)
	return &Suggester{cfg: cfg}
}

// Config returns the sanitised configuration.
func (s *Suggester) Config() Config {
	return s.cfg
}

// SuggestMaxBaseFee suggests a max base fee using the default configuration.
func SuggestMaxBaseFee(history *FeeHistory) (*BaseFeeSuggestion, error) {
	return defaultSuggester.SuggestMaxBaseFee(history)
}

// SuggestMaxPriorityFee suggests max priority fees using the default configuration.
func SuggestMaxPriorityFee(history *FeeHistory) (*PriorityFeeSuggestion, error) {
	return defaultSuggester.SuggestMaxPriorityFee(history)
}

// SuggestFees suggests base and priority fees using the default configuration.
func SuggestFees(history *FeeHistory) (*FeeSuggestions, error) {
	return defaultSuggester.SuggestFees(history)
}

// BaseFeeTrend classifies baseFees (gwei) with the configured thresholds.
func (s *Suggester) BaseFeeTrend(baseFees []float64, currentBaseFee *big.Int) Trend {
	return calculateBaseFeeTrend(baseFees, currentBaseFee, s.cfg.Trend)
}

// OutlierBlocksToRemove flags the records whose reward at index exceeds the
// configured ceiling.
func (s *Suggester) OutlierBlocksToRemove(rewards []RewardRecord, index int) []int {
	return outlierBlocksToRemove(rewards, index, s.cfg.OutlierCeiling)
}

func (s *Suggester) RewardsFilterOutliers(rewards []RewardRecord, outliers []int, index int) []float64 {
	return RewardsFilterOutliers(rewards, outliers, index)
}

// SuggestMaxBaseFee smooths the history's base fees over every time factor up
// to MaxTimeFactor and suggests the highest result. The pending block's fee is
// raised by the maximum per block increase and full blocks take their
// successor's fee, since both predict a higher next base fee.
func (s *Suggester) SuggestMaxBaseFee(history *FeeHistory) (*BaseFeeSuggestion, error) {
	if history == nil || len(history.BaseFee) == 0 {
		return nil, ErrNoBaseFees
	}
	var (
		fees    = history.BaseFeesGwei()
		current = history.CurrentBaseFee()
		trend   = s.BaseFeeTrend(fees, current)
	)
	fees[len(fees)-1] *= s.cfg.PendingBaseFeeRatio
	for i := len(history.GasUsedRatio) - 1; i >= 0; i-- {
		if i+1 < len(fees) && history.GasUsedRatio[i] > s.cfg.FullBlockRatio {
			fees[i] = fees[i+1]
		}
	}
	order := ascendingOrder(fees)

	var (
		maxBaseFee   float64
		byTimeFactor = make([]*big.Int, s.cfg.MaxTimeFactor+1)
	)
	for timeFactor := s.cfg.MaxTimeFactor; timeFactor >= 0; timeFactor-- {
		bf, err := SuggestBaseFee(fees, order, float64(timeFactor), s.cfg.SampleMin, s.cfg.SampleMax)
		if err != nil {
			return nil, errors.Wrapf(err, "time factor %d", timeFactor)
		}
		if bf > maxBaseFee {
			maxBaseFee = bf
		}
		byTimeFactor[timeFactor] = unit.GweiFloatToWei(maxBaseFee)
	}
	log.Debug("Suggested max base fee", "blocks", len(fees), "gwei", maxBaseFee, "trend", trend)

	return &BaseFeeSuggestion{
		MaxBaseFee:     unit.GweiFloatToWei(maxBaseFee),
		CurrentBaseFee: current,
		Trend:          trend,
		ByTimeFactor:   byTimeFactor,
	}, nil
}

// SuggestMaxPriorityFee averages the rewards of the history per percentile,
// after dropping blocks whose lowest percentile reward is an outlier. The
// rewards are expected at params.RewardPercentiles.
func (s *Suggester) SuggestMaxPriorityFee(history *FeeHistory) (*PriorityFeeSuggestion, error) {
	if history == nil || len(history.Reward) == 0 {
		return nil, ErrNoRewards
	}
	rewards := history.Reward
	outliers := s.OutlierBlocksToRemove(rewards, 0)

	emas := make([]float64, len(params.RewardPercentiles))
	for i := range emas {
		ema, ok := emaOf(s.RewardsFilterOutliers(rewards, outliers, i))
		if !ok {
			return nil, errors.Wrapf(ErrNoRewardSamples, "percentile %v, %d of %d blocks are outliers", params.RewardPercentiles[i], len(outliers), len(rewards))
		}
		emas[i] = ema
	}
	perc10, perc15, perc30, perc45 := emas[0], emas[1], emas[2], emas[3]
	log.Debug("Suggested max priority fees", "blocks", len(rewards), "outliers", len(outliers),
		"p10", perc10, "p15", perc15, "p30", perc30, "p45", perc45)

	floor := s.cfg.MinPriorityFee
	return &PriorityFeeSuggestion{
		MaxPriorityFees: PriorityFees{
			Urgent: unit.GweiFloatToWei(math.Max(perc45, floor.Urgent)),
			Fast:   unit.GweiFloatToWei(math.Max(perc30, floor.Fast)),
			Normal: unit.GweiFloatToWei(math.Max(perc15, floor.Normal)),
		},
		ConfirmationTimeByPriorityFee: map[int]*big.Int{
			15: unit.GweiFloatToWei(perc45),
			30: unit.GweiFloatToWei(perc30),
			45: unit.GweiFloatToWei(perc15),
			60: unit.GweiFloatToWei(perc10),
		},
	}, nil
}

// SuggestFees suggests the max base fee from the whole history and the max
// priority fees from its newest PriorityFeeBlocks reward records.
func (s *Suggester) SuggestFees(history *FeeHistory) (*FeeSuggestions, error) {
	baseFee, err := s.SuggestMaxBaseFee(history)
	if err != nil {
		return nil, errors.Wrap(err, "base fee")
	}
	priorityFee, err := s.SuggestMaxPriorityFee(&FeeHistory{Reward: history.LatestRewards(s.cfg.PriorityFeeBlocks)})
	if err != nil {
		return nil, errors.Wrap(err, "priority fee")
	}
	return &FeeSuggestions{BaseFee: baseFee, PriorityFee: priorityFee}, nil
}
