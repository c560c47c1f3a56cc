package gasprice

import (
	"math"

	"github.com/pkg/errors"

	"github.com/DayOfShah/fee-suggestions/params"
)

var (
	ErrEmptyHistory    = errors.New("empty base fee history")
	ErrIndexOutOfRange = errors.New("base fee index out of range")
)

// SuggestBaseFee picks a smoothed, recency weighted percentile of history.
//
// Entries are visited in the given order. Each one adds its exponentially
// decaying weight (newest blocks weigh most) to a running sum which is mapped
// through the sampling curve; the entry contributes its fee in proportion to
// how far it moved the curve. Once the curve saturates the remaining entries
// are ignored. A timeFactor of (almost) zero returns the newest entry.
func SuggestBaseFee(history []float64, order []int, timeFactor, sampleMin, sampleMax float64) (float64, error) {
	if len(history) == 0 {
		return 0, ErrEmptyHistory
	}
	for _, idx := range order {
		if idx < 0 || idx >= len(history) {
			return 0, errors.Wrapf(ErrIndexOutOfRange, "index %d, history length %d", idx, len(history))
		}
	}
	if timeFactor < params.MinBaseFeeTimeFactor {
		return history[len(history)-1], nil
	}

	var (
		n                 = len(history)
		pendingWeight     = (1 - math.Exp(-1/timeFactor)) / (1 - math.Exp(-float64(n)/timeFactor))
		sumWeight, result float64
		samplingCurveLast float64
	)
	for _, idx := range order {
		sumWeight += pendingWeight * math.Exp(float64(idx-n+1)/timeFactor)
		samplingCurveValue := samplingCurve(sumWeight, sampleMin, sampleMax)
		result += (samplingCurveValue - samplingCurveLast) * history[idx]
		if samplingCurveValue >= 1 {
			return result, nil
		}
		samplingCurveLast = samplingCurveValue
	}
	return result, nil
}

// samplingCurve eases from 0 at sampleMin to 1 at sampleMax along half a
// cosine period, so the percentile cut off is gradual instead of a step.
func samplingCurve(sumWeight, sampleMin, sampleMax float64) float64 {
	if sumWeight <= sampleMin {
		return 0
	}
	if sumWeight >= sampleMax {
		return 1
	}
	return (1 - math.Cos((sumWeight-sampleMin)*math.Pi/(sampleMax-sampleMin))) / 2
}
