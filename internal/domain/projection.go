package domain

import (
	"github.com/shopspring/decimal"
)

// Scenario labels, always presented in this order.
const (
	LabelConservative = "Conservative"
	LabelBaseCase     = "Base Case"
	LabelOptimistic   = "Optimistic"
)

// ScenarioLabels lists the three labels in presentation order.
var ScenarioLabels = [3]string{LabelConservative, LabelBaseCase, LabelOptimistic}

// Display colors are opaque tokens passed through to whatever renders the
// scenario cards and chart; the engine never interprets them.
const (
	ColorConservative = "#e67e22"
	ColorBaseCase     = "#2e86de"
	ColorOptimistic   = "#27ae60"
)

// ProjectionResult is the base-case outcome of a projection run. It is
// derived, never stored independently of its inputs.
type ProjectionResult struct {
	ProjectedValue decimal.Decimal `json:"projected_value"`
	MonthlyIncome  decimal.Decimal `json:"monthly_income"`
}

// Scenario is one of the three parallel projections, differing only by
// annual rate. A set of exactly three is computed atomically and never
// mutated afterwards, only recomputed wholesale.
type Scenario struct {
	Label             string          `json:"label"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	ProjectedValue    decimal.Decimal `json:"projected_value"`
	MonthlyIncome     decimal.Decimal `json:"monthly_income"`
	DisplayColor      string          `json:"display_color"`
}

// YearlyPoint carries the balance of every scenario at one elapsed year,
// rounded to whole currency units for charting.
type YearlyPoint struct {
	Year     int                        `json:"year"`
	Balances map[string]decimal.Decimal `json:"balances"`
}

// ProjectionReport is the complete output of one projection run: base-case
// result, the three scenarios in order, and the chart-ready year series.
// Monetary values are rounded to cents (series balances to whole units), so
// the report is safe to hand straight to a presentation layer.
type ProjectionReport struct {
	Inputs    ProjectionInputs `json:"inputs"`
	Result    ProjectionResult `json:"result"`
	Scenarios [3]Scenario      `json:"scenarios"`
	Series    []YearlyPoint    `json:"series"`
}
