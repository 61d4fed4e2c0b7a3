package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestor-maestro/gestor/internal/pricing"
)

func TestUnitCost(t *testing.T) {
	type testCase struct {
		name    string
		input   pricing.BatchInput
		want    float64
		wantErr error
	}

	tests := []testCase{
		{
			name: "Success",
			input: pricing.BatchInput{
				MaterialCost: 120,
				LaborCost:    60,
				OverheadCost: 20,
				Yield:        40,
			},
			want: 5,
		},
		{
			name: "ZeroYield",
			input: pricing.BatchInput{
				MaterialCost: 100,
				Yield:        0,
			},
			wantErr: pricing.ErrZeroYield,
		},
		{
			name: "NegativeYield",
			input: pricing.BatchInput{
				MaterialCost: 100,
				Yield:        -3,
			},
			wantErr: pricing.ErrZeroYield,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pricing.UnitCost(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestMargin(t *testing.T) {
	assert.InDelta(t, 50, pricing.Margin(5, 10), 0.001)
	assert.InDelta(t, 0, pricing.Margin(10, 0), 0.001)
	assert.InDelta(t, -25, pricing.Margin(10, 8), 0.001)
}

func TestSuggestedPrice(t *testing.T) {
	price, err := pricing.SuggestedPrice(6, 40)
	require.NoError(t, err)
	assert.InDelta(t, 10, price, 0.001)

	price, err = pricing.SuggestedPrice(7.33, 35)
	require.NoError(t, err)
	assert.InDelta(t, 11.28, price, 0.001)

	_, err = pricing.SuggestedPrice(5, 100)
	assert.ErrorIs(t, err, pricing.ErrMarginTooHigh)

	_, err = pricing.SuggestedPrice(5, 120)
	assert.ErrorIs(t, err, pricing.ErrMarginTooHigh)
}

func TestBreakEvenUnits(t *testing.T) {
	assert.Equal(t, 250, pricing.BreakEvenUnits(1000, 6, 10))
	assert.Equal(t, 334, pricing.BreakEvenUnits(1000, 7, 10))

	// Selling at or below cost never breaks even.
	assert.Equal(t, 0, pricing.BreakEvenUnits(1000, 10, 10))
	assert.Equal(t, 0, pricing.BreakEvenUnits(1000, 12, 10))
}
