package reservation

import (
	"context"

	"github.com/barberia-app/barberia-api/internal/cache"
	domain "github.com/barberia-app/barberia-api/internal/domain/reservation"
	"github.com/barberia-app/barberia-api/internal/dto"
	"github.com/barberia-app/barberia-api/internal/httperr"
)

type AvailableSlots struct {
	repo  domain.Repository
	grid  domain.SlotGrid
	slots *cache.SlotCache
}

func NewAvailableSlots(
	repo domain.Repository,
	grid domain.SlotGrid,
	slots *cache.SlotCache,
) *AvailableSlots {
	return &AvailableSlots{
		repo:  repo,
		grid:  grid,
		slots: slots,
	}
}

func (uc *AvailableSlots) Execute(
	ctx context.Context,
	barberID uint,
	date string,
) (*dto.AvailableSlotsResponse, error) {

	if barberID == 0 {
		return nil, httperr.ErrValidation("barber_required")
	}
	if !domain.ValidDate(date) {
		return nil, httperr.ErrValidation("invalid_date")
	}

	if cached, ok := uc.slots.Get(ctx, barberID, date); ok {
		return cached, nil
	}

	occupied, err := uc.repo.ListOccupiedTimes(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	resp := &dto.AvailableSlotsResponse{
		BarberID:       barberID,
		Date:           date,
		SlotsAvailable: uc.grid.Available(occupied),
		SlotsOccupied:  occupied,
	}

	uc.slots.Set(ctx, barberID, date, resp)
	return resp, nil
}
