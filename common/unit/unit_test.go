package unit

import (
	"math"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecimal(t *testing.T, v interface{}) decimal.Decimal {
	d, err := ParseDecimal(v)
	require.NoError(t, err)
	return d
}

func TestParseDecimal(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 300)
	var cases = []struct {
		in     interface{}
		expect string
	}{
		{nil, "0"},
		{"", "0"},
		{"  42 ", "42"},
		{"1.25", "1.25"},
		{"0x3b9aca00", "1000000000"},
		{"0X0a", "10"},
		{7, "7"},
		{int64(-3), "-3"},
		{uint64(math.MaxUint64), "18446744073709551615"},
		{2.5, "2.5"},
		{big.NewInt(123), "123"},
		{(*hexutil.Big)(big.NewInt(9)), "9"},
		{decimal.NewFromInt(5), "5"},
		{huge, huge.String()},
	}
	for _, c := range cases {
		got, err := ParseDecimal(c.in)
		require.NoError(t, err, "input %v", c.in)
		assert.Equal(t, c.expect, got.String(), "input %v", c.in)
	}
}

func TestParseDecimalInvalid(t *testing.T) {
	for _, in := range []interface{}{"abc", "0xzz", math.NaN(), math.Inf(1), struct{}{}} {
		_, err := ParseDecimal(in)
		assert.Error(t, err, "input %v", in)
	}
}

func TestDivideZeroGuard(t *testing.T) {
	assert.True(t, Divide(decimal.Zero, decimal.Zero).IsZero())
	assert.True(t, Divide(decimal.NewFromInt(5), decimal.Zero).IsZero())
	assert.True(t, Divide(decimal.Zero, decimal.NewFromInt(5)).IsZero())
	assert.Equal(t, "2.5", Divide(decimal.NewFromInt(5), decimal.NewFromInt(2)).String())
}

func TestMultiply(t *testing.T) {
	assert.Equal(t, "7.5", Multiply(decimal.NewFromFloat(2.5), decimal.NewFromInt(3)).String())
}

func TestWeiToGwei(t *testing.T) {
	assert.Equal(t, "1", WeiToGwei(mustDecimal(t, "1000000000")))
	assert.Equal(t, "1.5", WeiToGwei(mustDecimal(t, "1500000000")))
	assert.Equal(t, "0.000000001", WeiToGwei(mustDecimal(t, 1)))
	assert.Equal(t, "0", WeiToGwei(decimal.Zero))

	assert.Equal(t, 6.0, WeiToGweiNumber(mustDecimal(t, "6000000000")))
	assert.InDelta(t, 1.234567891, WeiToGweiNumber(mustDecimal(t, "1234567891")), 1e-12)
}

func TestGweiToWei(t *testing.T) {
	assert.Equal(t, "1500000000", GweiToWei(mustDecimal(t, "1.5")))
	assert.Equal(t, "1", GweiToWei(mustDecimal(t, "0.0000000005")))
	assert.Equal(t, "0", GweiToWei(decimal.Zero))

	assert.Equal(t, big.NewInt(2_000_000_000), GweiFloatToWei(2))
	assert.Equal(t, big.NewInt(1_125_000_000), GweiFloatToWei(1.125))
	assert.Equal(t, 0, GweiFloatToWei(math.NaN()).Sign())
	assert.Equal(t, 0, GweiFloatToWei(-1).Sign())
}

func TestConversionRoundTrip(t *testing.T) {
	// Beyond 2^256 to make sure nothing goes through fixed width integers.
	huge := new(big.Int).Lsh(big.NewInt(3), 260)
	for _, wei := range []string{"0", "1", "999999999", "1000000000", "123456789012345678901234567890", huge.String()} {
		gwei := WeiToGwei(mustDecimal(t, wei))
		assert.Equal(t, wei, GweiToWei(mustDecimal(t, gwei)), "wei %s", wei)
	}
}
