package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/sajidZ-904/LDSCO-Task/internal/domain"
)

// seriesYearCap bounds the chart series length. Scenario end values always
// use the full years-to-retirement; only the rendered series is truncated.
const seriesYearCap = 40

// GenerateSeries produces the year-indexed balance sequence for each
// scenario, years 0 through min(yearsToRetirement, 40) inclusive. Each
// balance is the scenario's future value at that elapsed year, rounded to
// the nearest whole currency unit. The sequence is fully materialized and
// recomputed wholesale on every input change, never updated incrementally.
func GenerateSeries(inputs domain.ProjectionInputs, scenarios [3]domain.Scenario) []domain.YearlyPoint {
	lastYear := inputs.YearsToRetirement
	if lastYear > seriesYearCap {
		lastYear = seriesYearCap
	}

	series := make([]domain.YearlyPoint, 0, lastYear+1)
	for year := 0; year <= lastYear; year++ {
		point := domain.YearlyPoint{
			Year:     year,
			Balances: make(map[string]decimal.Decimal, len(scenarios)),
		}
		for _, sc := range scenarios {
			balance := FutureValue(inputs.CurrentBalance, inputs.MonthlyContribution, sc.AnnualRatePercent, year)
			point.Balances[sc.Label] = balance.Round(0)
		}
		series = append(series, point)
	}
	return series
}
