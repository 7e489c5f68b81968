package statement

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statementText = `FIRSTNAME|YU-HSIN| LASTNAME|WU|
For January 1, 2021 to March 31, 2021
Your balance on Mar 31, 2021: $501,974.66
Beginning balance $460,806.88
Equities $351,832.90 70.09%
Fixed Income 59,636.94 11.88%
Multi-Asset 90,504.82 18.03%
Your contributions 8,250.02
Employer contributions 7,425.03
Gains/Loss 25,492.73
Personal rate of return for the period 5.45%
Based on your balance you are on track for an estimated monthly lifetime income of $8,568.00
assuming an average monthly contribution of $3,466.00
This plan has a delayed vesting provision for employer contributions.
1 RETIREMENT PLAN
Balance as of Mar 31, 2021 $228,743.55
2 VOLUNTARY EMPLOYEE RETIREMENT PLAN
Balance as of Mar 31, 2021 $182,726.29
`

func TestExtractStatementFields(t *testing.T) {
	data, err := NewExtractor().Extract(statementText)
	require.NoError(t, err)

	assert.Equal(t, "YU-HSIN WU", data.AccountHolderName)
	assert.Equal(t, "January 1, 2021", data.StatementStartDate)
	assert.Equal(t, "March 31, 2021", data.StatementEndDate)
	assert.Equal(t, "$501,974.66", data.EndingBalance)
	assert.Equal(t, "$501,974.66", data.TotalPortfolioBalance)
	assert.Equal(t, "$460,806.88", data.BeginningBalance)
	assert.Equal(t, "$351,832.90", data.EquitiesValue)
	assert.Equal(t, "70.09%", data.EquitiesPercentage)
	assert.Equal(t, "$59,636.94", data.FixedIncomeValue)
	assert.Equal(t, "11.88%", data.FixedIncomePercentage)
	assert.Equal(t, "$90,504.82", data.MultiAssetValue)
	assert.Equal(t, "18.03%", data.MultiAssetPercentage)
	assert.Equal(t, "$8,250.02", data.EmployeeContributions)
	assert.Equal(t, "$7,425.03", data.EmployerContributions)
	assert.Equal(t, "$25,492.73", data.TotalGainsLoss)
	assert.Equal(t, "5.45%", data.PersonalRateOfReturn)
	assert.Equal(t, "$8,568.00", data.EstimatedMonthlyIncomeAtRetirement)
	assert.Equal(t, "$3,466.00", data.AverageMonthlyContribution)
	assert.Contains(t, data.VestingStatus, "Delayed vesting provision")

	require.Len(t, data.PlanDetails, 2)
	assert.Equal(t, PlanDetail{PlanNumber: "1", PlanType: "RETIREMENT PLAN", Balance: "$228,743.55"}, data.PlanDetails[0])
	assert.Equal(t, PlanDetail{PlanNumber: "2", PlanType: "VOLUNTARY EMPLOYEE RETIREMENT PLAN", Balance: "$182,726.29"}, data.PlanDetails[1])
}

func TestExtractMissingFieldsStayEmpty(t *testing.T) {
	data, err := NewExtractor().Extract("Ending balance $1,000.00 and nothing else")
	require.NoError(t, err)
	assert.Equal(t, "$1,000.00", data.EndingBalance)
	assert.Empty(t, data.AccountHolderName)
	assert.Empty(t, data.BeginningBalance)
	assert.Empty(t, data.PlanDetails)
	assert.Equal(t, "Vesting information not clearly specified", data.VestingStatus)
}

func TestExtractEmptyTextFails(t *testing.T) {
	_, err := NewExtractor().Extract("   \n ")
	require.Error(t, err)
}

func TestExtractHolderNameFallback(t *testing.T) {
	data, err := NewExtractor().Extract("Account holder: JANE DOE\nEnding balance $10.00")
	require.NoError(t, err)
	assert.Equal(t, "JANE DOE", data.AccountHolderName)
}

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount("$501,974.66")
	require.NoError(t, err)
	assert.Equal(t, "501974.66", d.String())

	_, err = ParseAmount("")
	require.Error(t, err)
	_, err = ParseAmount("$not-money")
	require.Error(t, err)
}

func TestToCSV(t *testing.T) {
	data, err := ToCSV(SampleStatement())
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)

	require.Equal(t, []string{"Category", "Field", "Value"}, records[0])
	assert.Equal(t, []string{"Basic Info", "Account Holder Name", "YU-HSIN WU"}, records[1])

	last := records[len(records)-1]
	assert.Equal(t, "Plan Details", last[0])
	assert.Equal(t, "5", last[1])
}

func TestSummary(t *testing.T) {
	text := Summary(SampleStatement())
	assert.Contains(t, text, "YU-HSIN WU")
	assert.Contains(t, text, "$460,806.88")
	assert.Contains(t, text, "$501,974.66")
	assert.Contains(t, text, "5.45%")
	assert.Contains(t, text, "vesting")
}

func TestProjectionInputsFromStatement(t *testing.T) {
	inputs, err := ProjectionInputsFromStatement(SampleStatement(), decimal.NewFromInt(7), 20)
	require.NoError(t, err)
	assert.Equal(t, "501974.66", inputs.CurrentBalance.String())
	assert.Equal(t, "3466", inputs.MonthlyContribution.String())
	assert.Equal(t, 20, inputs.YearsToRetirement)
}

func TestProjectionInputsFromStatementMissingBalance(t *testing.T) {
	_, err := ProjectionInputsFromStatement(StatementData{}, decimal.NewFromInt(7), 20)
	require.Error(t, err)
}
