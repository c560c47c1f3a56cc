package gasprice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEMA(t *testing.T) {
	ema := NewEMA(0.5)
	assert.Equal(t, 10.0, ema.Tick(10))
	assert.Equal(t, 15.0, ema.Tick(20))
	assert.Equal(t, 12.5, ema.Tick(10))
	assert.Equal(t, 12.5, ema.Value())
}

func TestEMAOf(t *testing.T) {
	_, ok := emaOf(nil)
	assert.False(t, ok)

	v, ok := emaOf([]float64{4})
	assert.True(t, ok)
	assert.Equal(t, 4.0, v)

	// decay 2/(3+1) = 0.5
	v, ok = emaOf([]float64{10, 20, 10})
	assert.True(t, ok)
	assert.Equal(t, 12.5, v)

	v, _ = emaOf([]float64{2, 2, 2, 2, 2, 2, 2, 2, 2, 2})
	assert.InDelta(t, 2, v, 1e-12)
}
