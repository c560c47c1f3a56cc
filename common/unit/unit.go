// Package unit converts fee amounts between wei and gwei with arbitrary
// precision.
package unit

import (
	"math"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/DayOfShah/fee-suggestions/params"
)

// divisionPrecision is the number of fractional digits kept by Divide.
const divisionPrecision = 18

// GweiMultiplier is the number of wei in one gwei.
var GweiMultiplier = decimal.NewFromInt(params.GWei)

var errUnsupportedValue = errors.New("unsupported numeric value")

// ParseDecimal accepts the forms fee amounts arrive in: decimal or 0x-prefixed
// hex strings, native integers and floats, big integers and decimals. nil and
// the empty string are zero.
func ParseDecimal(v interface{}) (decimal.Decimal, error) {
	switch n := v.(type) {
	case nil:
		return decimal.Zero, nil
	case decimal.Decimal:
		return n, nil
	case *decimal.Decimal:
		if n == nil {
			return decimal.Zero, nil
		}
		return *n, nil
	case *big.Int:
		return FromBig(n), nil
	case *hexutil.Big:
		return FromBig(n.ToInt()), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case uint64:
		return FromBig(new(big.Int).SetUint64(n)), nil
	case float32:
		return parseFloat(float64(n))
	case float64:
		return parseFloat(n)
	case string:
		return parseString(n)
	default:
		return decimal.Zero, errors.Wrapf(errUnsupportedValue, "%T", v)
	}
}

func parseFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, errors.Errorf("non-finite value %v", f)
	}
	return decimal.NewFromFloat(f), nil
}

func parseString(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		b, ok := new(big.Int).SetString(s[2:], 16)
		if !ok {
			return decimal.Zero, errors.Errorf("invalid hex quantity %q", s)
		}
		return FromBig(b), nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "invalid decimal %q", s)
	}
	return d, nil
}

// FromBig returns b as a decimal; nil is zero.
func FromBig(b *big.Int) decimal.Decimal {
	if b == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(b, 0)
}

// Multiply returns a*b.
func Multiply(a, b decimal.Decimal) decimal.Decimal {
	return a.Mul(b)
}

// Divide returns a/b. If either operand is zero the result is zero, so a
// missing amount never turns into a division error downstream.
func Divide(a, b decimal.Decimal) decimal.Decimal {
	if a.IsZero() || b.IsZero() {
		return decimal.Zero
	}
	return a.DivRound(b, divisionPrecision)
}

// WeiToGwei converts wei to a fixed-point gwei string, e.g. "1.5".
func WeiToGwei(wei decimal.Decimal) string {
	return Divide(wei, GweiMultiplier).String()
}

// WeiToGweiNumber converts wei to gwei as a float64. The result is advisory
// and must not be fed back into settlement amounts.
func WeiToGweiNumber(wei decimal.Decimal) float64 {
	return Divide(wei, GweiMultiplier).InexactFloat64()
}

// GweiToWei converts gwei to an integer wei string, rounding half away from zero.
func GweiToWei(gwei decimal.Decimal) string {
	return Multiply(gwei, GweiMultiplier).StringFixed(0)
}

// GweiFloatToWei converts a float gwei amount to wei. Non-finite and negative
// amounts are zero.
func GweiFloatToWei(gwei float64) *big.Int {
	if math.IsNaN(gwei) || math.IsInf(gwei, 0) || gwei <= 0 {
		return new(big.Int)
	}
	return Multiply(decimal.NewFromFloat(gwei), GweiMultiplier).Round(0).BigInt()
}
