package money_test

import (
	"testing"

	"github.com/ckeeling/splitledger/internal/utils/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestQuantize_HalfUp(t *testing.T) {
	assert.True(t, money.Quantize(d("1.005")).Equal(d("1.01")))
	assert.True(t, money.Quantize(d("1.004")).Equal(d("1.00")))
	assert.True(t, money.Quantize(d("39.4000")).Equal(d("39.40")))
}

func TestAmountCAD_Deterministic(t *testing.T) {
	// 1000 THB at 0.0394 CAD/THB
	first := money.AmountCAD(d("1000.00"), d("0.0394"))
	second := money.AmountCAD(d("1000.00"), d("0.0394"))
	assert.True(t, first.Equal(d("39.40")), "got %s", first)
	assert.True(t, first.Equal(second))
}

func TestSplitShares_EvenWeights(t *testing.T) {
	h, b := money.SplitShares(d("39.40"), 1, 1)
	assert.True(t, h.Equal(d("19.70")), "household share %s", h)
	assert.True(t, b.Equal(d("19.70")), "bev share %s", b)
}

func TestSplitShares_ZeroWeights(t *testing.T) {
	h, b := money.SplitShares(d("100.00"), 0, 0)
	assert.True(t, h.IsZero())
	assert.True(t, b.IsZero())
}

func TestSplitShares_SumWithinOneCent(t *testing.T) {
	cases := []struct {
		amount string
		wH, wB int64
	}{
		{"39.40", 1, 1},
		{"100.00", 1, 2},
		{"0.01", 1, 1},
		{"99.99", 3, 7},
		{"10.05", 2, 1},
		{"1234.56", 5, 3},
		{"0.03", 1, 2},
	}
	oneCent := d("0.01")
	for _, tc := range cases {
		amount := d(tc.amount)
		h, b := money.SplitShares(amount, tc.wH, tc.wB)
		diff := h.Add(b).Sub(amount).Abs()
		require.True(t, diff.LessThanOrEqual(oneCent),
			"amount=%s wH=%d wB=%d shares %s+%s off by %s", tc.amount, tc.wH, tc.wB, h, b, diff)
	}
}

func TestSplitShares_UnevenRounding(t *testing.T) {
	// 0.01 split 1/2: both shares round independently, no redistribution.
	h, b := money.SplitShares(d("0.01"), 1, 2)
	assert.True(t, h.Equal(d("0.00")), "household %s", h)
	assert.True(t, b.Equal(d("0.01")), "bev %s", b)
}
