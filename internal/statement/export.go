package statement

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// ToCSV renders the statement as Category/Field/Value rows, followed by one
// row per plan.
func ToCSV(data StatementData) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write([]string{"Category", "Field", "Value"}); err != nil {
		return nil, err
	}

	rows := [][3]string{
		{"Basic Info", "Account Holder Name", data.AccountHolderName},
		{"Basic Info", "Statement Period Start", data.StatementStartDate},
		{"Basic Info", "Statement Period End", data.StatementEndDate},
		{"Portfolio Balance", "Beginning Balance", data.BeginningBalance},
		{"Portfolio Balance", "Ending Balance", data.EndingBalance},
		{"Portfolio Balance", "Total Portfolio Balance", data.TotalPortfolioBalance},
		{"Asset Allocation", "Equities Value", data.EquitiesValue},
		{"Asset Allocation", "Equities Percentage", data.EquitiesPercentage},
		{"Asset Allocation", "Fixed Income Value", data.FixedIncomeValue},
		{"Asset Allocation", "Fixed Income Percentage", data.FixedIncomePercentage},
		{"Asset Allocation", "Multi-Asset Value", data.MultiAssetValue},
		{"Asset Allocation", "Multi-Asset Percentage", data.MultiAssetPercentage},
		{"Performance", "Employee Contributions", data.EmployeeContributions},
		{"Performance", "Employer Contributions", data.EmployerContributions},
		{"Performance", "Total Gains/Loss", data.TotalGainsLoss},
		{"Performance", "Personal Rate of Return", data.PersonalRateOfReturn},
		{"Performance", "Average Monthly Contribution", data.AverageMonthlyContribution},
		{"Performance", "Estimated Monthly Income at Retirement", data.EstimatedMonthlyIncomeAtRetirement},
		{"Vesting", "Vesting Status", data.VestingStatus},
	}
	for _, row := range rows {
		if err := w.Write(row[:]); err != nil {
			return nil, err
		}
	}

	if len(data.PlanDetails) > 0 {
		if err := w.Write([]string{""}); err != nil {
			return nil, err
		}
		if err := w.Write([]string{"Plan Details", "Plan Number", "Plan Type", "Balance"}); err != nil {
			return nil, err
		}
		for _, plan := range data.PlanDetails {
			if err := w.Write([]string{"Plan Details", plan.PlanNumber, plan.PlanType, plan.Balance}); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// Summary generates the natural-language portfolio performance summary the
// statement tooling ships alongside the CSV.
func Summary(data StatementData) string {
	return fmt.Sprintf(`Portfolio Performance Summary for %s (%s to %s):

The retirement portfolio returned %s for the period, growing from %s to %s. The portfolio generated %s in gains, supplemented by %s in employee contributions and %s in employer matching.

The portfolio allocation stands at %s in equities, %s in fixed income, and %s in multi-asset funds, projecting %s monthly income at retirement based on current %s monthly contributions.

Regarding vesting: %s`,
		data.AccountHolderName,
		data.StatementStartDate,
		data.StatementEndDate,
		data.PersonalRateOfReturn,
		data.BeginningBalance,
		data.EndingBalance,
		data.TotalGainsLoss,
		data.EmployeeContributions,
		data.EmployerContributions,
		data.EquitiesPercentage,
		data.FixedIncomePercentage,
		data.MultiAssetPercentage,
		data.EstimatedMonthlyIncomeAtRetirement,
		data.AverageMonthlyContribution,
		data.VestingStatus)
}
