package reservation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/barberia-app/barberia-api/internal/domain/reservation"
)

func TestTierTable_Compute(t *testing.T) {
	tiers := domain.DefaultTiers()

	tests := []struct {
		name           string
		completedPrior int
		wantApplies    bool
		wantPercent    float64
	}{
		{name: "first appointment", completedPrior: 0, wantApplies: false, wantPercent: 0},
		{name: "ninth completed, tenth booking gets discount", completedPrior: 9, wantApplies: true, wantPercent: 20},
		{name: "tenth completed, eleventh booking pays full", completedPrior: 10, wantApplies: false, wantPercent: 0},
		{name: "nineteenth completed, twentieth gets discount", completedPrior: 19, wantApplies: true, wantPercent: 20},
		{name: "negative count treated as no history", completedPrior: -1, wantApplies: false, wantPercent: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tiers.Compute(tt.completedPrior)
			assert.Equal(t, tt.wantApplies, d.Applies)
			assert.Equal(t, tt.wantPercent, d.Percent)
		})
	}
}

func TestTierTable_Compute_Deterministic(t *testing.T) {
	tiers := domain.DefaultTiers()

	first := tiers.Compute(9)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, tiers.Compute(9))
	}
}

func TestTierTable_Compute_HighestTierWins(t *testing.T) {
	tiers := domain.TierTable{
		{EveryN: 5, Percent: 10},
		{EveryN: 10, Percent: 20},
	}

	// 10th booking matches both tiers; the larger percent applies.
	d := tiers.Compute(9)
	assert.True(t, d.Applies)
	assert.Equal(t, 20.0, d.Percent)

	// 5th booking matches only the smaller tier.
	d = tiers.Compute(4)
	assert.True(t, d.Applies)
	assert.Equal(t, 10.0, d.Percent)
}

func TestTierTable_Compute_ClampsAndIgnoresBadTiers(t *testing.T) {
	tiers := domain.TierTable{
		{EveryN: 0, Percent: 50},
		{EveryN: -2, Percent: 50},
		{EveryN: 2, Percent: 150},
	}

	d := tiers.Compute(1)
	assert.True(t, d.Applies)
	assert.Equal(t, 100.0, d.Percent)

	d = tiers.Compute(0)
	assert.False(t, d.Applies)
}

func TestTierTable_Next(t *testing.T) {
	tiers := domain.DefaultTiers()

	d, n := tiers.Next(9)
	assert.True(t, d.Applies)
	assert.Equal(t, 20.0, d.Percent)
	assert.Equal(t, 10, n)

	d, n = tiers.Next(3)
	assert.False(t, d.Applies)
	assert.Equal(t, 4, n)
}
