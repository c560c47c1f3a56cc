package gasprice

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/DayOfShah/fee-suggestions/common/unit"
)

// FeeHistory is the result of an eth_feeHistory call. BaseFee carries one more
// entry than GasUsedRatio: the base fee of the pending block.
type FeeHistory struct {
	OldestBlock  *hexutil.Big   `json:"oldestBlock"`
	Reward       []RewardRecord `json:"reward,omitempty"`
	BaseFee      []*hexutil.Big `json:"baseFeePerGas,omitempty"`
	GasUsedRatio []float64      `json:"gasUsedRatio"`
}

// BaseFeesGwei returns the base fees in gwei, oldest first.
func (h *FeeHistory) BaseFeesGwei() []float64 {
	fees := make([]float64, len(h.BaseFee))
	for i, fee := range h.BaseFee {
		fees[i] = unit.WeiToGweiNumber(unit.FromBig(fee.ToInt()))
	}
	return fees
}

// CurrentBaseFee returns a copy of the newest base fee in wei, or nil.
func (h *FeeHistory) CurrentBaseFee() *big.Int {
	if len(h.BaseFee) == 0 || h.BaseFee[len(h.BaseFee)-1] == nil {
		return nil
	}
	return new(big.Int).Set(h.BaseFee[len(h.BaseFee)-1].ToInt())
}

// LatestRewards returns the newest n reward records.
func (h *FeeHistory) LatestRewards(n int) []RewardRecord {
	if n < 0 {
		n = 0
	}
	if n >= len(h.Reward) {
		return h.Reward
	}
	return h.Reward[len(h.Reward)-n:]
}
