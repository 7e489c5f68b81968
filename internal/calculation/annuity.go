package calculation

import (
	"github.com/shopspring/decimal"
)

// Payout annuity parameters. These are fixed product terms, not user inputs:
// the projected value is converted into a 20-year fixed-term annuity priced
// at 4% annually.
var (
	annuityAnnualRate = decimal.NewFromFloat(0.04)
	annuityTermMonths = decimal.NewFromInt(240)
)

// MonthlyIncome converts a lump sum into the fixed monthly payment of a
// 240-month annuity at 4% annual:
//
//	PMT = PV * (rm * (1+rm)^240) / ((1+rm)^240 - 1), rm = 0.04/12
//
// The payment is zero for a zero present value and scales linearly with it.
// Callers guarantee PV >= 0 via upstream validation; a negative PV produces
// a well-defined negative payment.
func MonthlyIncome(presentValue decimal.Decimal) decimal.Decimal {
	rm := annuityAnnualRate.Div(months)
	growth := one.Add(rm).Pow(annuityTermMonths)
	return presentValue.Mul(rm.Mul(growth)).Div(growth.Sub(one))
}
