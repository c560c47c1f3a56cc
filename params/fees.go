package params

import "github.com/ethereum/go-ethereum/params"

// GWei is the scale between the wei unit fees are settled in and the gwei unit
// they are displayed and averaged in.
const GWei = params.GWei

// Base fee suggestion.
const (
	MaxTimeFactor = 15  // longest smoothing horizon, in blocks
	SampleMin     = 0.1 // cumulative weight where the sampling curve leaves 0
	SampleMax     = 0.3 // cumulative weight where the sampling curve reaches 1

	// The pending block's base fee can rise by at most 1/8 over its parent.
	PendingBaseFeeRatio = 9.0 / 8.0
	// Blocks fuller than this are assumed to push the next base fee up, so
	// their own fee is replaced with their successor's.
	FullBlockRatio = 0.9

	MinBaseFeeTimeFactor = 1e-6 // below this the latest base fee is returned as is
)

// Base fee trend thresholds.
const (
	TrendFalling     = 0.725
	TrendRaising     = 1.275
	TrendSurging     = 1.5
	TrendMedianSlope = -5

	// The short window drops the oldest 51 blocks and is grouped by 5,
	// the long window drops the oldest block and is grouped by 25.
	TrendShortSkip  = 51
	TrendShortGroup = 5
	TrendLongSkip   = 1
	TrendLongGroup  = 25
)

// Priority fee suggestion.
const (
	PriorityFeeBlocks = 10
	OutlierCeiling    = 5.0 // gwei

	UrgentMinPriorityFee = 2.0 // gwei
	FastMinPriorityFee   = 1.5 // gwei
	NormalMinPriorityFee = 1.0 // gwei
)

// RewardPercentiles are the eth_feeHistory reward percentiles the priority fee
// suggestion expects, in reward record order.
var RewardPercentiles = []float64{10, 15, 30, 45}
