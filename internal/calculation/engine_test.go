package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajidZ-904/LDSCO-Task/internal/domain"
)

func TestProjectEndToEnd(t *testing.T) {
	engine := NewEngine()
	report, err := engine.Project(validInputs())
	require.NoError(t, err)

	// $50,000 at 7% with $1,000/month over 30 years, verified against an
	// independent float computation of the same formulas.
	wantValue := floatFV(50000, 1000, 7, 30)
	require.InDelta(t, wantValue, report.Result.ProjectedValue.InexactFloat64(), 0.5)
	require.InDelta(t, floatPMT(wantValue), report.Result.MonthlyIncome.InexactFloat64(), 0.05)

	require.Len(t, report.Series, 31)
	require.Equal(t, domain.LabelConservative, report.Scenarios[0].Label)
	require.Equal(t, domain.LabelBaseCase, report.Scenarios[1].Label)
	require.Equal(t, domain.LabelOptimistic, report.Scenarios[2].Label)
}

func TestProjectIsIdempotent(t *testing.T) {
	engine := NewEngine()
	inputs := validInputs()

	first, err := engine.Project(inputs)
	require.NoError(t, err)
	second, err := engine.Project(inputs)
	require.NoError(t, err)

	require.Equal(t, first, second, "identical inputs must yield identical reports")
}

func TestProjectScenarioValuesRoundedToCents(t *testing.T) {
	engine := NewEngine()
	report, err := engine.Project(validInputs())
	require.NoError(t, err)

	for _, sc := range report.Scenarios {
		assert.True(t, sc.ProjectedValue.Equal(sc.ProjectedValue.Round(2)), "%s value not cent-rounded", sc.Label)
		assert.True(t, sc.MonthlyIncome.Equal(sc.MonthlyIncome.Round(2)), "%s income not cent-rounded", sc.Label)
	}
}

func TestProjectRejectsInvalidInputsAtomically(t *testing.T) {
	engine := NewEngine()
	inputs := validInputs()
	inputs.CurrentBalance = decimal.NewFromInt(-1)
	inputs.YearsToRetirement = 0

	report, err := engine.Project(inputs)
	require.Error(t, err)

	var errs domain.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, domain.FieldCurrentBalance)
	assert.Contains(t, errs, domain.FieldYearsToRetirement)

	// No partial results on failure.
	assert.Empty(t, report.Series)
	assert.True(t, report.Result.ProjectedValue.IsZero())
}

func TestProjectAllOutputsNonNegative(t *testing.T) {
	// Minimum accepted rate: optimistic is -18, conservative floored at 1.
	engine := NewEngine()
	inputs := validInputs()
	inputs.ExpectedAnnualReturnPercent = decimal.NewFromInt(-20)

	report, err := engine.Project(inputs)
	require.NoError(t, err)

	for _, sc := range report.Scenarios {
		assert.False(t, sc.ProjectedValue.IsNegative(), "%s value negative", sc.Label)
		assert.False(t, sc.MonthlyIncome.IsNegative(), "%s income negative", sc.Label)
	}
	for _, point := range report.Series {
		for label, balance := range point.Balances {
			assert.False(t, balance.IsNegative(), "year %d %s negative", point.Year, label)
		}
	}
}
