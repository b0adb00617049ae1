package reservation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/barberia-app/barberia-api/internal/domain/reservation"
)

func TestSlotGrid_Slots(t *testing.T) {
	grid := domain.DefaultGrid()
	slots := grid.Slots()

	assert.Len(t, slots, 20)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "09:30", slots[1])
	assert.Equal(t, "18:30", slots[19])
}

func TestSlotGrid_Contains(t *testing.T) {
	grid := domain.DefaultGrid()

	tests := []struct {
		time string
		want bool
	}{
		{"09:00", true},
		{"18:30", true},
		{"19:00", false}, // closing time is not bookable
		{"08:30", false},
		{"10:15", false}, // off-grid
		{"10:30", true},
		{"banana", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.time, func(t *testing.T) {
			assert.Equal(t, tt.want, grid.Contains(tt.time))
		})
	}
}

func TestSlotGrid_Available(t *testing.T) {
	grid := domain.DefaultGrid()

	free := grid.Available([]string{"10:00", "15:30"})
	assert.Len(t, free, 18)
	assert.NotContains(t, free, "10:00")
	assert.NotContains(t, free, "15:30")

	// chronological order is preserved
	assert.Equal(t, "09:00", free[0])
	assert.Equal(t, "09:30", free[1])
	assert.Equal(t, "10:30", free[2])
}

func TestSlotGrid_Available_AllFree(t *testing.T) {
	grid := domain.DefaultGrid()

	free := grid.Available(nil)
	assert.Equal(t, grid.Slots(), free)
}

func TestSlotGrid_Available_IgnoresUnknownTimes(t *testing.T) {
	grid := domain.DefaultGrid()

	// occupied entries outside the grid do not shrink it
	free := grid.Available([]string{"07:00", "22:00"})
	assert.Len(t, free, 20)
}

func TestValidDate(t *testing.T) {
	assert.True(t, domain.ValidDate("2026-03-14"))
	assert.False(t, domain.ValidDate("14-03-2026"))
	assert.False(t, domain.ValidDate("2026-13-01"))
	assert.False(t, domain.ValidDate(""))
}
