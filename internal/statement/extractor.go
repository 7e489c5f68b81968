package statement

import (
	"fmt"
	"regexp"
	"strings"
)

// Extraction patterns follow the field layout of TIAA quarterly statements.
// Each is tried against the full statement text; a miss leaves the field
// empty rather than failing the extraction.
var (
	reLastName  = regexp.MustCompile(`LASTNAME\|([^|]+)`)
	reFirstName = regexp.MustCompile(`FIRSTNAME\|([^|]+)`)
	reHolder    = regexp.MustCompile(`Account holder:[ \t]*([A-Z][A-Z .-]*)`)

	reStatementPeriod = regexp.MustCompile(`For\s+([A-Za-z]+ \d+, \d{4})\s+to\s+([A-Za-z]+ \d+, \d{4})`)

	reBalanceOn        = regexp.MustCompile(`Your balance on [^:]+:\s*\$([0-9,]+\.\d{2})`)
	reEndingBalance    = regexp.MustCompile(`Ending balance\s*\$([0-9,]+\.\d{2})`)
	reBeginningBalance = regexp.MustCompile(`Beginning balance\s*\$([0-9,]+\.\d{2})`)

	reEquities    = regexp.MustCompile(`Equities\s*\$([0-9,]+\.\d{2})\s*([0-9.]+)%`)
	reFixedIncome = regexp.MustCompile(`Fixed Income\s*\$?([0-9,]+\.\d{2})\s*([0-9.]+)%`)
	reMultiAsset  = regexp.MustCompile(`Multi-Asset\s*\$?([0-9,]+\.\d{2})\s*([0-9.]+)%`)

	reEmployeeContrib = regexp.MustCompile(`Your contributions\s*\$?([0-9,]+\.\d{2})`)
	reEmployerContrib = regexp.MustCompile(`Employer contributions\s*\$?([0-9,]+\.\d{2})`)
	reGainsLoss       = regexp.MustCompile(`Gains/Loss\s*\$?([0-9,]+\.\d{2})`)
	reRateOfReturn    = regexp.MustCompile(`Personal rate of return[^0-9]*([0-9.]+)%`)
	reMonthlyIncome   = regexp.MustCompile(`estimated monthly lifetime income of \$([0-9,]+\.\d{2})`)
	reAvgContribution = regexp.MustCompile(`average monthly contribution of \$([0-9,]+\.\d{2})`)

	reDelayedVesting = regexp.MustCompile(`(?i)delayed vesting provision`)
	reFullyVested    = regexp.MustCompile(`100% vested`)

	rePlanDetail = regexp.MustCompile(`(?s)(\d+)\s+(RETIREMENT PLAN|VOLUNTARY EMPLOYEE RETIREMENT PLAN|MATCHING PLAN|BASIC PLAN|SUPPLEMENTAL RETIREMENT ANNUITY PLAN).*?Balance as of [A-Za-z]+ \d+, \d{4}\s*\$([0-9,]+\.\d{2})`)
)

// Extractor pulls StatementData out of raw statement text. PDF-to-text
// conversion happens upstream; the extractor consumes plain text.
type Extractor struct{}

// NewExtractor creates a statement extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract runs every field pattern over the statement text. Missing fields
// stay empty; only a completely blank input is an error.
func (e *Extractor) Extract(text string) (StatementData, error) {
	if strings.TrimSpace(text) == "" {
		return StatementData{}, fmt.Errorf("statement text is empty")
	}

	data := StatementData{
		AccountHolderName: e.extractHolderName(text),
	}

	if m := reStatementPeriod.FindStringSubmatch(text); m != nil {
		data.StatementStartDate = m[1]
		data.StatementEndDate = m[2]
	}

	if m := reBalanceOn.FindStringSubmatch(text); m != nil {
		data.TotalPortfolioBalance = "$" + m[1]
		data.EndingBalance = "$" + m[1]
	} else if m := reEndingBalance.FindStringSubmatch(text); m != nil {
		data.TotalPortfolioBalance = "$" + m[1]
		data.EndingBalance = "$" + m[1]
	}
	if m := reBeginningBalance.FindStringSubmatch(text); m != nil {
		data.BeginningBalance = "$" + m[1]
	}

	if m := reEquities.FindStringSubmatch(text); m != nil {
		data.EquitiesValue = "$" + m[1]
		data.EquitiesPercentage = m[2] + "%"
	}
	if m := reFixedIncome.FindStringSubmatch(text); m != nil {
		data.FixedIncomeValue = "$" + m[1]
		data.FixedIncomePercentage = m[2] + "%"
	}
	if m := reMultiAsset.FindStringSubmatch(text); m != nil {
		data.MultiAssetValue = "$" + m[1]
		data.MultiAssetPercentage = m[2] + "%"
	}

	if m := reEmployeeContrib.FindStringSubmatch(text); m != nil {
		data.EmployeeContributions = "$" + m[1]
	}
	if m := reEmployerContrib.FindStringSubmatch(text); m != nil {
		data.EmployerContributions = "$" + m[1]
	}
	if m := reGainsLoss.FindStringSubmatch(text); m != nil {
		data.TotalGainsLoss = "$" + m[1]
	}
	if m := reRateOfReturn.FindStringSubmatch(text); m != nil {
		data.PersonalRateOfReturn = m[1] + "%"
	}
	if m := reMonthlyIncome.FindStringSubmatch(text); m != nil {
		data.EstimatedMonthlyIncomeAtRetirement = "$" + m[1]
	}
	if m := reAvgContribution.FindStringSubmatch(text); m != nil {
		data.AverageMonthlyContribution = "$" + m[1]
	}

	data.VestingStatus = e.extractVestingStatus(text)
	data.PlanDetails = e.extractPlanDetails(text)

	return data, nil
}

func (e *Extractor) extractHolderName(text string) string {
	last := reLastName.FindStringSubmatch(text)
	first := reFirstName.FindStringSubmatch(text)
	if last != nil && first != nil {
		return strings.TrimSpace(first[1]) + " " + strings.TrimSpace(last[1])
	}
	if m := reHolder.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func (e *Extractor) extractVestingStatus(text string) string {
	switch {
	case reDelayedVesting.MatchString(text):
		return "Delayed vesting provision applies - employer maintains vesting information"
	case reFullyVested.MatchString(text):
		return "100% vested in participant contributions"
	default:
		return "Vesting information not clearly specified"
	}
}

func (e *Extractor) extractPlanDetails(text string) []PlanDetail {
	var plans []PlanDetail
	for _, m := range rePlanDetail.FindAllStringSubmatch(text, -1) {
		plans = append(plans, PlanDetail{
			PlanNumber: m[1],
			PlanType:   m[2],
			Balance:    "$" + m[3],
		})
	}
	return plans
}
