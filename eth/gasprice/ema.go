package gasprice

// NewEMA(decay) returns a new exponential moving average. It weighs new values more than
// existing values according to the decay. For example: NewEMA(0.05) would give 5% weight
// to new values and 95% weight to past values. The first value seeds the average.
func NewEMA(decay float64) *EMA {
	return &EMA{decay: decay}
}

type EMA struct {
	decay  float64
	value  float64
	seeded bool
}

func (ema *EMA) Tick(v float64) float64 {
	if !ema.seeded {
		ema.value = v
		ema.seeded = true
		return ema.value
	}
	ema.value = ema.decay*v + (1-ema.decay)*ema.value
	return ema.value
}

func (ema *EMA) Value() float64 {
	return ema.value
}

// emaOf averages values with a decay of 2/(n+1), the usual span based weight
// for a window of n samples. It reports false for an empty series.
func emaOf(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	ema := NewEMA(2 / float64(len(values)+1))
	for _, v := range values {
		ema.Tick(v)
	}
	return ema.Value(), true
}
