package calculation

import (
	"github.com/shopspring/decimal"
)

// periodsPerYear is the fixed monthly compounding frequency.
const periodsPerYear = 12

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
	months  = decimal.NewFromInt(periodsPerYear)
)

// MonthlyRate converts an annual percentage rate to a periodic (monthly)
// decimal rate: annualPercent / 100 / 12. Pure; accepts any value, including
// negative rates.
func MonthlyRate(annualPercent decimal.Decimal) decimal.Decimal {
	return annualPercent.Div(hundred).Div(months)
}
