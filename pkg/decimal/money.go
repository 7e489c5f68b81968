package decimal

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with proper financial precision.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a Money from a decimal amount.
func NewMoney(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a Money from its string representation.
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the amount to cents.
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// RoundDollar rounds the amount to the nearest whole currency unit.
func (m Money) RoundDollar() Money {
	return Money{m.Decimal.Round(0)}
}

// String returns the plain two-decimal representation.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount with a currency symbol, grouped thousands and
// cents: $1,234,567.89.
func (m Money) Format() string {
	return "$" + humanize.CommafWithDigits(m.Decimal.InexactFloat64(), 2)
}

// FormatDollar renders the amount grouped and rounded to whole units:
// $1,234,568.
func (m Money) FormatDollar() string {
	return "$" + humanize.CommafWithDigits(m.Decimal.Round(0).InexactFloat64(), 0)
}
