package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFeeHistory(t *testing.T) {
	bare, err := loadFeeHistory("testdata/fee_history.json")
	require.NoError(t, err)
	assert.Len(t, bare.BaseFee, 101)
	assert.Len(t, bare.Reward, 100)

	wrapped, err := loadFeeHistory("testdata/rpc_response.json")
	require.NoError(t, err)
	assert.Len(t, wrapped.BaseFee, 11)
	assert.Len(t, wrapped.GasUsedRatio, 10)
	assert.Equal(t, bare.CurrentBaseFee(), wrapped.CurrentBaseFee())
}

func TestLoadFeeHistoryErrors(t *testing.T) {
	_, err := loadFeeHistory("testdata/rpc_error.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rpc error -32602")

	_, err = loadFeeHistory("testdata/broken.json")
	assert.Error(t, err)

	_, err = loadFeeHistory("testdata/missing.json")
	assert.Error(t, err)
}
