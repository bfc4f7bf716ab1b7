package trip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardPricingStrategy_Calculate(t *testing.T) {
	strategy := NewStandardPricingStrategy()

	tests := []struct {
		name        string
		params      PricingParams
		wantPrice   float64
		wantMinutes int
	}{
		{
			name:        "shared multiplies per seat",
			params:      PricingParams{DistanceKm: 100, Mode: ModeShared, PartySize: 2},
			wantPrice:   5400, // (200 + 100*25) * 2
			wantMinutes: 134,  // ceil(100/45*60)
		},
		{
			name:        "shared single seat",
			params:      PricingParams{DistanceKm: 100, Mode: ModeShared, PartySize: 1},
			wantPrice:   2700,
			wantMinutes: 134,
		},
		{
			name:        "private is flat regardless of party size",
			params:      PricingParams{DistanceKm: 100, Mode: ModePrivate, PartySize: 4},
			wantPrice:   6500, // 500 + 100*60
			wantMinutes: 100,
		},
		{
			name:        "zero distance still carries the base fare",
			params:      PricingParams{DistanceKm: 0, Mode: ModePrivate, PartySize: 1},
			wantPrice:   500,
			wantMinutes: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := strategy.Calculate(tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrice, quote.Price)
			assert.Equal(t, tt.wantMinutes, quote.EstimatedTimeMinutes)
			assert.Equal(t, tt.params.DistanceKm, quote.DistanceKm)
		})
	}
}

func TestStandardPricingStrategy_PrivatePriceIndependentOfPartySize(t *testing.T) {
	strategy := NewStandardPricingStrategy()

	solo, err := strategy.Calculate(PricingParams{DistanceKm: 140, Mode: ModePrivate, PartySize: 1})
	require.NoError(t, err)
	full, err := strategy.Calculate(PricingParams{DistanceKm: 140, Mode: ModePrivate, PartySize: 6})
	require.NoError(t, err)

	assert.Equal(t, solo.Price, full.Price)
}

func TestStandardPricingStrategy_Errors(t *testing.T) {
	strategy := NewStandardPricingStrategy()

	_, err := strategy.Calculate(PricingParams{DistanceKm: 10, Mode: ModeShared, PartySize: 0})
	assert.ErrorIs(t, err, ErrInvalidPartySize)

	_, err = strategy.Calculate(PricingParams{DistanceKm: 10, Mode: ModeShared, PartySize: -3})
	assert.ErrorIs(t, err, ErrInvalidPartySize)

	_, err = strategy.Calculate(PricingParams{DistanceKm: -1, Mode: ModeShared, PartySize: 2})
	assert.ErrorIs(t, err, ErrUnresolvableRoute)

	_, err = strategy.Calculate(PricingParams{DistanceKm: 10, Mode: ServiceMode("bicitaxi"), PartySize: 2})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidPartySize)
}

func TestParseServiceMode(t *testing.T) {
	mode, err := ParseServiceMode("colectivo")
	require.NoError(t, err)
	assert.Equal(t, ModeShared, mode)

	mode, err = ParseServiceMode("privado")
	require.NoError(t, err)
	assert.Equal(t, ModePrivate, mode)

	_, err = ParseServiceMode("guagua")
	assert.Error(t, err)
}

func TestHalfDayWindow_Label(t *testing.T) {
	assert.Equal(t, "Mañana (6:00 AM - 12:00 PM)", WindowMorning.Label())
	assert.Equal(t, "Tarde (12:00 PM - 6:00 PM)", WindowAfternoon.Label())
}
