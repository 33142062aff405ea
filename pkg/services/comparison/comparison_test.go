package comparison

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		quantity    string
		description string
	}{
		{
			name:        "exactly one latte",
			amount:      "6",
			quantity:    "1.0",
			description: "Starbucks lattes ☕",
		},
		{
			name:        "three dinners beat every other candidate",
			amount:      "240",
			quantity:    "3.0",
			description: "nice dinners out 🍽️",
		},
		{
			name:        "movie tickets for a modest total",
			amount:      "50",
			quantity:    "3.3",
			description: "movie tickets 🎬",
		},
		{
			name:        "quantities of ten drop the decimal",
			amount:      "20000",
			quantity:    "10",
			description: "week-long vacations 🏖️",
		},
		{
			name:        "below catalog range falls back to lattes",
			amount:      "4",
			quantity:    "1",
			description: "Starbucks lattes ☕",
		},
		{
			name:        "above catalog range falls back to dinners",
			amount:      "25000",
			quantity:    "312.5",
			description: "nice dinners out 🍽️",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(decimal.RequireFromString(tt.amount))
			assert.Equal(t, tt.quantity, got.Quantity)
			assert.Equal(t, tt.description, got.Description)
		})
	}
}

func TestSelect_Deterministic(t *testing.T) {
	amount := decimal.NewFromInt(240)
	first := Select(amount)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Select(amount))
	}
}
