package gasprice

import (
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/DayOfShah/fee-suggestions/common/unit"
)

// RewardRecord is one block's priority fee rewards in wei, one entry per
// requested reward percentile.
type RewardRecord []*hexutil.Big

// gwei returns the reward at index in gwei; a missing entry counts as zero.
func (r RewardRecord) gwei(index int) float64 {
	if index < 0 || index >= len(r) || r[index] == nil {
		return 0
	}
	return unit.WeiToGweiNumber(unit.FromBig(r[index].ToInt()))
}

// OutlierBlocksToRemove returns the positions of the records whose reward at
// index exceeds the default outlier ceiling.
func OutlierBlocksToRemove(rewards []RewardRecord, index int) []int {
	return outlierBlocksToRemove(rewards, index, DefaultConfig.OutlierCeiling)
}

func outlierBlocksToRemove(rewards []RewardRecord, index int, ceiling float64) []int {
	var blocks []int
	for i, reward := range rewards {
		if reward.gwei(index) > ceiling {
			blocks = append(blocks, i)
		}
	}
	return blocks
}

// RewardsFilterOutliers returns the gwei rewards at index of every record not
// listed in outliers, in record order.
func RewardsFilterOutliers(rewards []RewardRecord, outliers []int, index int) []float64 {
	skip := make(map[int]struct{}, len(outliers))
	for _, i := range outliers {
		skip[i] = struct{}{}
	}
	filtered := make([]float64, 0, len(rewards))
	for i, reward := range rewards {
		if _, ok := skip[i]; ok {
			continue
		}
		filtered = append(filtered, reward.gwei(index))
	}
	return filtered
}
