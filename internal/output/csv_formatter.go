package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/sajidZ-904/LDSCO-Task/internal/domain"
)

// CSVFormatter emits one row per scenario followed by the year series, one
// row per year with a balance column per scenario.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write([]string{"Scenario", "AnnualRatePercent", "ProjectedValue", "MonthlyIncome"}); err != nil {
		return nil, err
	}
	for _, sc := range report.Scenarios {
		row := []string{
			sc.Label,
			sc.AnnualRatePercent.String(),
			sc.ProjectedValue.StringFixed(2),
			sc.MonthlyIncome.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	if err := w.Write([]string{""}); err != nil {
		return nil, err
	}
	if err := w.Write([]string{"Year", domain.LabelConservative, domain.LabelBaseCase, domain.LabelOptimistic}); err != nil {
		return nil, err
	}
	for _, point := range report.Series {
		row := []string{
			strconv.Itoa(point.Year),
			point.Balances[domain.LabelConservative].StringFixed(0),
			point.Balances[domain.LabelBaseCase].StringFixed(0),
			point.Balances[domain.LabelOptimistic].StringFixed(0),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
