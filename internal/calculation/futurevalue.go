package calculation

import (
	"github.com/shopspring/decimal"
)

// FutureValue compounds a principal and a stream of monthly contributions
// over the given number of years at the given annual percentage rate,
// compounding monthly.
//
// The growth factor is g = (1 + r/12)^(12*years). The principal component is
// principal*g; the contribution component is contribution*(g-1)/(r/12).
// A zero periodic rate degenerates the contribution term to
// contribution*12*years, so rate 0 is linear accumulation rather than a
// division by zero. years may be zero, in which case the result is exactly
// the principal. Negative rates are permitted and shrink the growth factor.
func FutureValue(principal, monthlyContribution, annualRatePercent decimal.Decimal, years int) decimal.Decimal {
	totalMonths := decimal.NewFromInt(int64(years * periodsPerYear))

	monthlyRate := MonthlyRate(annualRatePercent)
	if monthlyRate.IsZero() {
		return principal.Add(monthlyContribution.Mul(totalMonths))
	}

	growth := one.Add(monthlyRate).Pow(totalMonths)
	principalComponent := principal.Mul(growth)
	contributionComponent := monthlyContribution.Mul(growth.Sub(one)).Div(monthlyRate)
	return principalComponent.Add(contributionComponent)
}
