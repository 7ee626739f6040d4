package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		amount string
		unit   string
	}{
		{"retail with unit", "₹250/100g", "250", "100g"},
		{"classic retail", "₹180/100g", "180", "100g"},
		{"wholesale with MOQ suffix", "₹160/100g (MOQ: 10kg)", "160", "100g (MOQ: 10kg)"},
		{"decimal amount", "₹99.50/100g", "99.5", "100g"},
		{"no unit", "₹360", "360", ""},
		{"Rs prefix", "Rs. 230/100g", "230", "100g"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePrice(tt.input)
			require.NoError(t, err)
			expected, err := decimal.NewFromString(tt.amount)
			require.NoError(t, err)
			assert.True(t, p.Amount.Equal(expected), "amount %s != %s", p.Amount, expected)
			assert.Equal(t, tt.unit, p.Unit)
			assert.Equal(t, tt.input, p.Display)
		})
	}
}

func TestParsePriceInvalid(t *testing.T) {
	for _, input := range []string{"", "₹", "free", "₹/100g"} {
		_, err := ParsePrice(input)
		assert.ErrorIs(t, err, ErrInvalidPrice, "input %q", input)
	}
}

func TestParseAmount(t *testing.T) {
	amount, err := ParseAmount("₹180/100g")
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromInt(180)))

	_, err = ParseAmount("no price here")
	assert.Error(t, err)
}
