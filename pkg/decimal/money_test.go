package decimal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromString(t *testing.T) {
	m, err := NewMoneyFromString("1234.567")
	require.NoError(t, err)
	assert.Equal(t, "1234.57", m.Round().String())

	_, err = NewMoneyFromString("not-a-number")
	require.Error(t, err)
}

func TestRoundDollar(t *testing.T) {
	m := NewMoney(decimal.NewFromFloat(1234.56))
	assert.Equal(t, "1235.00", m.RoundDollar().String())
}

func TestFormatGroupsThousands(t *testing.T) {
	m := NewMoney(decimal.NewFromFloat(1234567.89))
	assert.Equal(t, "$1,234,567.89", m.Format())
	assert.Equal(t, "$1,234,568", m.FormatDollar())
}

func TestFormatSmallAmount(t *testing.T) {
	m := NewMoney(decimal.NewFromFloat(42.5))
	assert.Equal(t, "$42.5", m.Format())
	assert.Equal(t, "42.50", m.String())
}
