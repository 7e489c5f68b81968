package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/sajidZ-904/LDSCO-Task/internal/domain"
)

var (
	rateSpread            = decimal.NewFromInt(2)
	conservativeRateFloor = decimal.NewFromInt(1)
)

// ScenarioRates derives the three annual rates from the base rate. The
// conservative rate is floored at 1%: product policy, so a low or negative
// base rate never produces a near-zero or negative conservative card. The
// optimistic rate is base+2, unclamped.
func ScenarioRates(baseRatePercent decimal.Decimal) [3]decimal.Decimal {
	conservative := baseRatePercent.Sub(rateSpread)
	if conservative.LessThan(conservativeRateFloor) {
		conservative = conservativeRateFloor
	}
	return [3]decimal.Decimal{
		conservative,
		baseRatePercent,
		baseRatePercent.Add(rateSpread),
	}
}

// ComputeScenarios runs the projection for the conservative, base and
// optimistic rates over validated inputs. The base-case result is rounded to
// cents; scenario values are returned at full precision and rounded at the
// presentation boundary. All three scenarios are computed as one unit; there
// is no partial result state.
func ComputeScenarios(inputs domain.ProjectionInputs) (domain.ProjectionResult, [3]domain.Scenario) {
	rates := ScenarioRates(inputs.ExpectedAnnualReturnPercent)
	colors := [3]string{domain.ColorConservative, domain.ColorBaseCase, domain.ColorOptimistic}

	var scenarios [3]domain.Scenario
	for i, rate := range rates {
		value := FutureValue(inputs.CurrentBalance, inputs.MonthlyContribution, rate, inputs.YearsToRetirement)
		scenarios[i] = domain.Scenario{
			Label:             domain.ScenarioLabels[i],
			AnnualRatePercent: rate,
			ProjectedValue:    value,
			MonthlyIncome:     MonthlyIncome(value),
			DisplayColor:      colors[i],
		}
	}

	base := scenarios[1]
	result := domain.ProjectionResult{
		ProjectedValue: base.ProjectedValue.Round(2),
		MonthlyIncome:  base.MonthlyIncome.Round(2),
	}
	return result, scenarios
}
