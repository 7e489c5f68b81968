package calculation

import (
	"github.com/sajidZ-904/LDSCO-Task/internal/domain"
)

// Engine orchestrates a full projection run: validation gate, three-scenario
// computation and the chart series. It holds no mutable state beyond its
// logger, so a single Engine is safe for unlimited parallel use.
type Engine struct {
	Logger Logger
}

// NewEngine creates a projection engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. A nil logger restores the no-op.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Project validates the inputs and, when they pass, computes the base-case
// result, the three scenarios and the year series as one immutable report.
// When validation fails the ValidationErrors map is returned and nothing is
// computed; there is no partial or degraded result state. Identical inputs
// always yield identical reports.
func (e *Engine) Project(inputs domain.ProjectionInputs) (domain.ProjectionReport, error) {
	if errs := Validate(inputs); len(errs) > 0 {
		e.Logger.Debugf("projection rejected: %v", errs)
		return domain.ProjectionReport{}, errs
	}

	result, scenarios := ComputeScenarios(inputs)
	series := GenerateSeries(inputs, scenarios)

	// Scenario values leave the engine rounded to cents; the report is the
	// presentation boundary.
	for i := range scenarios {
		scenarios[i].ProjectedValue = scenarios[i].ProjectedValue.Round(2)
		scenarios[i].MonthlyIncome = scenarios[i].MonthlyIncome.Round(2)
	}

	e.Logger.Debugf("projected %d years at base rate %s%%: value %s",
		inputs.YearsToRetirement,
		inputs.ExpectedAnnualReturnPercent.String(),
		result.ProjectedValue.StringFixed(2))

	return domain.ProjectionReport{
		Inputs:    inputs,
		Result:    result,
		Scenarios: scenarios,
		Series:    series,
	}, nil
}
