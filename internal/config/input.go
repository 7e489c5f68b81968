package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/sajidZ-904/LDSCO-Task/internal/calculation"
	"github.com/sajidZ-904/LDSCO-Task/internal/domain"
)

// InputParser handles parsing of projection input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// fileInputs is the on-disk schema. Pointer fields distinguish an absent key
// from a legitimate zero, so "must be present" rules can be enforced before
// the range checks run.
type fileInputs struct {
	CurrentBalance              *decimal.Decimal `yaml:"current_balance"`
	MonthlyContribution         *decimal.Decimal `yaml:"monthly_contribution"`
	ExpectedAnnualReturnPercent *decimal.Decimal `yaml:"expected_annual_return_percent"`
	YearsToRetirement           *int             `yaml:"years_to_retirement"`
}

// LoadFromFile loads projection inputs from a YAML file and validates them.
// Validation failures are returned as domain.ValidationErrors with one entry
// per offending field.
func (ip *InputParser) LoadFromFile(filename string) (domain.ProjectionInputs, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return domain.ProjectionInputs{}, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	inputs, err := ip.Parse(data)
	if err != nil {
		return domain.ProjectionInputs{}, fmt.Errorf("input file %s: %w", filename, err)
	}
	return inputs, nil
}

// Parse decodes YAML input bytes and validates the result.
func (ip *InputParser) Parse(data []byte) (domain.ProjectionInputs, error) {
	var raw fileInputs
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return domain.ProjectionInputs{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	errs := domain.ValidationErrors{}
	if raw.CurrentBalance == nil {
		errs[domain.FieldCurrentBalance] = "is required"
	}
	if raw.ExpectedAnnualReturnPercent == nil {
		errs[domain.FieldExpectedReturn] = "is required"
	}
	if raw.YearsToRetirement == nil {
		errs[domain.FieldYearsToRetirement] = "is required"
	}
	if len(errs) > 0 {
		return domain.ProjectionInputs{}, errs
	}

	inputs := domain.ProjectionInputs{
		CurrentBalance:              *raw.CurrentBalance,
		ExpectedAnnualReturnPercent: *raw.ExpectedAnnualReturnPercent,
		YearsToRetirement:           *raw.YearsToRetirement,
	}
	if raw.MonthlyContribution != nil {
		inputs.MonthlyContribution = *raw.MonthlyContribution
	}

	if errs := calculation.Validate(inputs); len(errs) > 0 {
		return domain.ProjectionInputs{}, errs
	}
	return inputs, nil
}

// CreateExampleInputs returns a representative input set for the example
// file writer and the documentation.
func (ip *InputParser) CreateExampleInputs() domain.ProjectionInputs {
	return domain.ProjectionInputs{
		CurrentBalance:              decimal.NewFromInt(50000),
		MonthlyContribution:         decimal.NewFromInt(1000),
		ExpectedAnnualReturnPercent: decimal.NewFromInt(7),
		YearsToRetirement:           30,
	}
}

// WriteExampleFile writes a commented example input file to the given path.
func (ip *InputParser) WriteExampleFile(filename string) error {
	example := ip.CreateExampleInputs()
	content := fmt.Sprintf(`# Retirement projection inputs.
#
# current_balance               what the portfolio holds today (> 0)
# monthly_contribution          added every month (>= 0)
# expected_annual_return_percent  base-case annual return, -20 to 50
# years_to_retirement           whole years, 1 to 70
current_balance: %s
monthly_contribution: %s
expected_annual_return_percent: %s
years_to_retirement: %d
`,
		example.CurrentBalance.String(),
		example.MonthlyContribution.String(),
		example.ExpectedAnnualReturnPercent.String(),
		example.YearsToRetirement)

	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write example file %s: %w", filename, err)
	}
	return nil
}
