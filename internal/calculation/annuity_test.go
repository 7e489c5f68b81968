package calculation

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// floatPMT recomputes the 4%/240-month annuity payment with float64
// arithmetic.
func floatPMT(pv float64) float64 {
	rm := 0.04 / 12
	g := math.Pow(1+rm, 240)
	return pv * (rm * g) / (g - 1)
}

func TestMonthlyIncomeZeroPresentValue(t *testing.T) {
	require.True(t, MonthlyIncome(decimal.Zero).IsZero())
}

func TestMonthlyIncomeReferenceValues(t *testing.T) {
	for _, pv := range []float64{1000, 100000, 1625784.96} {
		got := MonthlyIncome(decimal.NewFromFloat(pv))
		require.InDelta(t, floatPMT(pv), got.InexactFloat64(), 0.01, "pv=%v", pv)
	}
}

func TestMonthlyIncomeScalesLinearly(t *testing.T) {
	base := MonthlyIncome(decimal.NewFromInt(100000))
	double := MonthlyIncome(decimal.NewFromInt(200000))
	require.True(t, double.Sub(base.Mul(decimal.NewFromInt(2))).Abs().LessThan(decimal.NewFromFloat(0.000001)),
		"payment must scale linearly: 2x%s vs %s", base, double)
}

func TestMonthlyIncomeStrictlyIncreasing(t *testing.T) {
	prev := MonthlyIncome(decimal.Zero)
	for _, pv := range []int64{1, 500, 10000, 250000, 5000000} {
		next := MonthlyIncome(decimal.NewFromInt(pv))
		require.True(t, next.GreaterThan(prev), "pv=%d: %s not greater than %s", pv, next, prev)
		prev = next
	}
}
