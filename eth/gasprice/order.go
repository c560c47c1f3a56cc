package gasprice

import "sort"

// feeOrder sorts block indices ascending by their base fee.
type feeOrder struct {
	idx  []int
	fees []float64
}

func (s feeOrder) Len() int           { return len(s.idx) }
func (s feeOrder) Less(i, j int) bool { return s.fees[s.idx[i]] < s.fees[s.idx[j]] }
func (s feeOrder) Swap(i, j int)      { s.idx[i], s.idx[j] = s.idx[j], s.idx[i] }

// ascendingOrder returns the indices of fees from cheapest to most expensive,
// keeping chronological order between equal fees.
func ascendingOrder(fees []float64) []int {
	order := feeOrder{idx: make([]int, len(fees)), fees: fees}
	for i := range order.idx {
		order.idx[i] = i
	}
	sort.Stable(order)
	return order.idx
}
