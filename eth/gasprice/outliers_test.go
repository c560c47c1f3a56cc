package gasprice

import (
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"

	"github.com/DayOfShah/fee-suggestions/common/unit"
)

// rewardRecord builds a reward record from amounts in gwei.
func rewardRecord(gwei ...float64) RewardRecord {
	record := make(RewardRecord, len(gwei))
	for i, g := range gwei {
		record[i] = (*hexutil.Big)(unit.GweiFloatToWei(g))
	}
	return record
}

func TestOutlierBlocksToRemove(t *testing.T) {
	rewards := []RewardRecord{
		rewardRecord(1, 2),
		rewardRecord(1, 2),
		rewardRecord(6, 2),
		rewardRecord(1, 7),
		rewardRecord(5, 2), // on the ceiling is not an outlier
	}
	assert.Equal(t, []int{2}, OutlierBlocksToRemove(rewards, 0))
	assert.Equal(t, []int{3}, OutlierBlocksToRemove(rewards, 1))
	assert.Empty(t, OutlierBlocksToRemove(rewards, 5))
	assert.Empty(t, OutlierBlocksToRemove(nil, 0))
}

func TestRewardsFilterOutliers(t *testing.T) {
	rewards := []RewardRecord{
		rewardRecord(1, 0.5),
		rewardRecord(6, 9),
		rewardRecord(1, 1.5),
		rewardRecord(1, 2.5),
	}
	outliers := OutlierBlocksToRemove(rewards, 0)
	assert.Equal(t, []int{1}, outliers)
	assert.Equal(t, []float64{1, 1, 1}, RewardsFilterOutliers(rewards, outliers, 0))
	assert.Equal(t, []float64{0.5, 1.5, 2.5}, RewardsFilterOutliers(rewards, outliers, 1))
	assert.Equal(t, []float64{1, 6, 1, 1}, RewardsFilterOutliers(rewards, nil, 0))

	// Missing or nil entries count as zero.
	sparse := []RewardRecord{{nil}, rewardRecord(3)}
	assert.Equal(t, []float64{0, 0}, RewardsFilterOutliers(sparse, nil, 1))
	assert.Equal(t, []float64{0, 3}, RewardsFilterOutliers(sparse, nil, 0))
}

func TestSuggesterOutlierCeiling(t *testing.T) {
	rewards := []RewardRecord{rewardRecord(1), rewardRecord(3), rewardRecord(6)}

	cfg := DefaultConfig
	cfg.OutlierCeiling = 2
	s := NewSuggester(cfg)
	assert.Equal(t, []int{1, 2}, s.OutlierBlocksToRemove(rewards, 0))
	assert.Equal(t, []float64{1}, s.RewardsFilterOutliers(rewards, []int{1, 2}, 0))
}
