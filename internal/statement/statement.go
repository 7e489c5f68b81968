// Package statement extracts portfolio figures from retirement account
// statement text and exports them as structured data. It is the companion to
// the projection engine: an extracted statement can seed projection inputs.
package statement

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// PlanDetail is one employer plan line on the statement.
type PlanDetail struct {
	PlanNumber string `json:"plan_number"`
	PlanType   string `json:"plan_type"`
	Balance    string `json:"balance"`
}

// StatementData holds every field extracted from a statement. Monetary and
// percentage fields keep the statement's display form ("$501,974.66",
// "70.09%"); an empty string means the field was not found. ParseAmount
// converts display values back to decimals where arithmetic is needed.
type StatementData struct {
	AccountHolderName  string `json:"account_holder_name"`
	StatementStartDate string `json:"statement_start_date"`
	StatementEndDate   string `json:"statement_end_date"`

	TotalPortfolioBalance string `json:"total_portfolio_balance"`
	BeginningBalance      string `json:"beginning_balance"`
	EndingBalance         string `json:"ending_balance"`

	EquitiesValue         string `json:"equities_value"`
	EquitiesPercentage    string `json:"equities_percentage"`
	FixedIncomeValue      string `json:"fixed_income_value"`
	FixedIncomePercentage string `json:"fixed_income_percentage"`
	MultiAssetValue       string `json:"multi_asset_value"`
	MultiAssetPercentage  string `json:"multi_asset_percentage"`

	EmployeeContributions string `json:"employee_contributions"`
	EmployerContributions string `json:"employer_contributions"`
	TotalGainsLoss        string `json:"total_gains_loss"`
	PersonalRateOfReturn  string `json:"personal_rate_of_return"`

	EstimatedMonthlyIncomeAtRetirement string `json:"estimated_monthly_income_at_retirement"`
	AverageMonthlyContribution         string `json:"average_monthly_contribution"`

	VestingStatus string       `json:"vesting_status"`
	PlanDetails   []PlanDetail `json:"plan_details"`
}

// ParseAmount converts a statement display amount like "$501,974.66" into a
// decimal. An empty value is an error; callers decide whether a missing
// field matters.
func ParseAmount(value string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(value)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return decimal.Decimal{}, fmt.Errorf("empty amount")
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse amount %q: %w", value, err)
	}
	return d, nil
}
