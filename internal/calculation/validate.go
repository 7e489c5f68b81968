package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/sajidZ-904/LDSCO-Task/internal/domain"
)

var (
	minReturnPercent = decimal.NewFromInt(-20)
	maxReturnPercent = decimal.NewFromInt(50)
)

// Years-to-retirement bounds.
const (
	minYears = 1
	maxYears = 70
)

// Validate enforces the domain constraints on raw inputs before any
// calculation runs. Every rule is checked independently and all violations
// are reported together; nothing short-circuits. An empty map means the
// inputs are valid. Callers must not run any projection while the map is
// non-empty.
func Validate(inputs domain.ProjectionInputs) domain.ValidationErrors {
	errs := domain.ValidationErrors{}

	if inputs.CurrentBalance.LessThanOrEqual(decimal.Zero) {
		errs[domain.FieldCurrentBalance] = "must be a positive amount"
	}
	if inputs.MonthlyContribution.IsNegative() {
		errs[domain.FieldMonthlyContribution] = "cannot be negative"
	}
	if inputs.ExpectedAnnualReturnPercent.LessThan(minReturnPercent) ||
		inputs.ExpectedAnnualReturnPercent.GreaterThan(maxReturnPercent) {
		errs[domain.FieldExpectedReturn] = "must be between -20 and 50 percent"
	}
	if inputs.YearsToRetirement < minYears || inputs.YearsToRetirement > maxYears {
		errs[domain.FieldYearsToRetirement] = "must be between 1 and 70 years"
	}

	return errs
}
