package gasprice

import (
	"math"
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/DayOfShah/fee-suggestions/common/unit"
	"github.com/DayOfShah/fee-suggestions/params"
)

// Trend classifies the recent movement of the base fee.
type Trend int

const (
	TrendFalling Trend = -1
	TrendStable  Trend = 0
	TrendRaising Trend = 1
	TrendSurging Trend = 2
)

func (t Trend) String() string {
	switch t {
	case TrendFalling:
		return "falling"
	case TrendStable:
		return "stable"
	case TrendRaising:
		return "raising"
	case TrendSurging:
		return "surging"
	default:
		return "unknown"
	}
}

var (
	errNotEnoughGroups  = errors.New("not enough base fees to form a group")
	errNotEnoughPoints  = errors.New("not enough group medians for a regression")
	errNonFinite        = errors.New("non-finite base fee statistic")
	errNoCurrentBaseFee = errors.New("current base fee missing")
)

// CalculateBaseFeeTrend classifies baseFees (gwei, oldest first) using the
// default thresholds. currentBaseFee is in wei. It never fails: whenever the
// history is too short or a statistic degenerates the trend is stable.
func CalculateBaseFeeTrend(baseFees []float64, currentBaseFee *big.Int) Trend {
	return calculateBaseFeeTrend(baseFees, currentBaseFee, DefaultConfig.Trend)
}

func calculateBaseFeeTrend(baseFees []float64, currentBaseFee *big.Int, cfg TrendConfig) Trend {
	trend, err := baseFeeTrend(baseFees, currentBaseFee, cfg)
	if err != nil {
		log.Debug("Base fee trend unavailable, assuming stable", "blocks", len(baseFees), "err", err)
		return TrendStable
	}
	return trend
}

func baseFeeTrend(baseFees []float64, currentBaseFee *big.Int, cfg TrendConfig) (Trend, error) {
	short, err := windowStats(baseFees, params.TrendShortSkip, params.TrendShortGroup)
	if err != nil {
		return TrendStable, errors.Wrap(err, "short window")
	}
	long, err := windowStats(baseFees, params.TrendLongSkip, params.TrendLongGroup)
	if err != nil {
		return TrendStable, errors.Wrap(err, "long window")
	}
	slope, err := medianSlope(short.medians)
	if err != nil {
		return TrendStable, errors.Wrap(err, "short window")
	}

	last := long.last
	maxByMedian := last.max / last.median
	minByMedian := last.min / last.median
	if !isFinite(maxByMedian) || !isFinite(minByMedian) {
		return TrendStable, errors.Wrapf(errNonFinite, "min %v median %v max %v", last.min, last.median, last.max)
	}

	switch {
	case maxByMedian > cfg.Surging:
		return TrendSurging, nil
	case maxByMedian > cfg.Raising && minByMedian > cfg.Falling:
		return TrendRaising, nil
	case maxByMedian < cfg.Raising && minByMedian > cfg.Falling:
		if slope < cfg.MedianSlope {
			return TrendFalling, nil
		}
		return TrendStable, nil
	case maxByMedian < cfg.Raising && minByMedian < cfg.Falling:
		return TrendFalling, nil
	}

	if currentBaseFee == nil {
		return TrendStable, errNoCurrentBaseFee
	}
	if unit.WeiToGweiNumber(unit.FromBig(currentBaseFee)) > last.median {
		return TrendRaising, nil
	}
	return TrendFalling, nil
}

type feeStats struct {
	min, median, max float64
}

type windowSummary struct {
	last    feeStats  // stats of the newest group
	medians []float64 // per group medians, oldest first
}

// windowStats drops the oldest skip fees, splits the rest into consecutive
// groups of size (the last one may be shorter) and summarises them.
func windowStats(fees []float64, skip, size int) (windowSummary, error) {
	groups := partition(fees, skip, size)
	if len(groups) == 0 {
		return windowSummary{}, errors.Wrapf(errNotEnoughGroups, "have %d fees, skipping %d", len(fees), skip)
	}
	summary := windowSummary{medians: make([]float64, len(groups))}
	for i, group := range groups {
		st := groupStats(group)
		summary.medians[i] = st.median
		summary.last = st
	}
	return summary, nil
}

func partition(fees []float64, skip, size int) [][]float64 {
	if skip >= len(fees) || size < 1 {
		return nil
	}
	window := fees[skip:]
	groups := make([][]float64, 0, (len(window)+size-1)/size)
	for start := 0; start < len(window); start += size {
		end := start + size
		if end > len(window) {
			end = len(window)
		}
		groups = append(groups, window[start:end:end])
	}
	return groups
}

// groupStats returns min, median and max of a non-empty group. For even
// lengths the median is the lower of the two middle elements. The group is
// sorted on a private copy.
func groupStats(group []float64) feeStats {
	sorted := make([]float64, len(group))
	copy(sorted, group)
	sort.Float64s(sorted)
	return feeStats{
		min:    sorted[0],
		median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		max:    sorted[len(sorted)-1],
	}
}

// medianSlope fits a least squares line through medians against their
// position and returns its slope.
func medianSlope(medians []float64) (float64, error) {
	if len(medians) < 2 {
		return 0, errors.Wrapf(errNotEnoughPoints, "have %d", len(medians))
	}
	xs := make([]float64, len(medians))
	for i := range xs {
		xs[i] = float64(i)
	}
	_, slope := stat.LinearRegression(xs, medians, nil, false)
	if !isFinite(slope) {
		return 0, errors.Wrapf(errNonFinite, "slope %v", slope)
	}
	return slope, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
