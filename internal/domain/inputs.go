package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// ProjectionInputs holds the user-supplied parameters for a projection run.
// A value is constructed fresh from validated input and never mutated; every
// derived result is recomputed wholesale when a new set of inputs arrives.
type ProjectionInputs struct {
	CurrentBalance              decimal.Decimal `json:"current_balance" yaml:"current_balance"`
	MonthlyContribution         decimal.Decimal `json:"monthly_contribution" yaml:"monthly_contribution"`
	ExpectedAnnualReturnPercent decimal.Decimal `json:"expected_annual_return_percent" yaml:"expected_annual_return_percent"`
	YearsToRetirement           int             `json:"years_to_retirement" yaml:"years_to_retirement"`
}

// Field names used as keys in ValidationErrors. They match the JSON/YAML tags
// so API consumers can map messages straight back onto form fields.
const (
	FieldCurrentBalance      = "current_balance"
	FieldMonthlyContribution = "monthly_contribution"
	FieldExpectedReturn      = "expected_annual_return_percent"
	FieldYearsToRetirement   = "years_to_retirement"
)

// ValidationErrors collects one message per invalid field. All rules are
// checked independently; the map is never a single first-error short-circuit.
// An empty map means the inputs are valid.
type ValidationErrors map[string]string

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	fields := make([]string, 0, len(ve))
	for f := range ve {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, ve[f]))
	}
	return "invalid inputs: " + strings.Join(parts, "; ")
}
