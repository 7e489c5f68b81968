package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sajidZ-904/LDSCO-Task/internal/domain"
	money "github.com/sajidZ-904/LDSCO-Task/pkg/decimal"
)

// ConsoleFormatter renders the report as a human-readable text summary:
// headline result, the three scenario cards and the year-by-year table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}

	rule := strings.Repeat("=", 64)
	fmt.Fprintln(buf, rule)
	fmt.Fprintln(buf, "RETIREMENT PORTFOLIO PROJECTION")
	fmt.Fprintln(buf, rule)
	fmt.Fprintf(buf, "Starting balance:     %s\n", money.NewMoney(report.Inputs.CurrentBalance).Format())
	fmt.Fprintf(buf, "Monthly contribution: %s\n", money.NewMoney(report.Inputs.MonthlyContribution).Format())
	fmt.Fprintf(buf, "Expected return:      %s%% per year\n", report.Inputs.ExpectedAnnualReturnPercent.String())
	fmt.Fprintf(buf, "Years to retirement:  %d\n", report.Inputs.YearsToRetirement)
	fmt.Fprintln(buf)

	fmt.Fprintf(buf, "Projected value at retirement: %s\n", money.NewMoney(report.Result.ProjectedValue).Format())
	fmt.Fprintf(buf, "Estimated monthly income:      %s (20-year annuity at 4%%)\n", money.NewMoney(report.Result.MonthlyIncome).Format())
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "SCENARIOS")
	fmt.Fprintln(buf, strings.Repeat("-", 64))
	for _, sc := range report.Scenarios {
		fmt.Fprintf(buf, "%-14s %6s%%  value %-16s income %s/mo\n",
			sc.Label,
			sc.AnnualRatePercent.String(),
			money.NewMoney(sc.ProjectedValue).Format(),
			money.NewMoney(sc.MonthlyIncome).Format())
	}
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "GROWTH BY YEAR")
	fmt.Fprintln(buf, strings.Repeat("-", 64))
	fmt.Fprintf(buf, "%-6s %16s %16s %16s\n", "Year",
		domain.LabelConservative, domain.LabelBaseCase, domain.LabelOptimistic)
	for _, point := range report.Series {
		fmt.Fprintf(buf, "%-6d %16s %16s %16s\n",
			point.Year,
			money.NewMoney(point.Balances[domain.LabelConservative]).FormatDollar(),
			money.NewMoney(point.Balances[domain.LabelBaseCase]).FormatDollar(),
			money.NewMoney(point.Balances[domain.LabelOptimistic]).FormatDollar())
	}

	return buf.Bytes(), nil
}
