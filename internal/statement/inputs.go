package statement

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sajidZ-904/LDSCO-Task/internal/domain"
)

// ProjectionInputsFromStatement derives projection inputs from an extracted
// statement: the ending balance seeds the current balance and the average
// monthly contribution seeds the contribution. Expected return and horizon
// are forward-looking assumptions the statement cannot supply, so the caller
// provides them.
func ProjectionInputsFromStatement(data StatementData, expectedAnnualReturnPercent decimal.Decimal, yearsToRetirement int) (domain.ProjectionInputs, error) {
	balance, err := ParseAmount(data.EndingBalance)
	if err != nil {
		return domain.ProjectionInputs{}, fmt.Errorf("statement ending balance: %w", err)
	}

	contribution := decimal.Zero
	if data.AverageMonthlyContribution != "" {
		contribution, err = ParseAmount(data.AverageMonthlyContribution)
		if err != nil {
			return domain.ProjectionInputs{}, fmt.Errorf("statement average monthly contribution: %w", err)
		}
	}

	return domain.ProjectionInputs{
		CurrentBalance:              balance,
		MonthlyContribution:         contribution,
		ExpectedAnnualReturnPercent: expectedAnnualReturnPercent,
		YearsToRetirement:           yearsToRetirement,
	}, nil
}
