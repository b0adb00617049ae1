package reservation

import (
	"context"

	"github.com/barberia-app/barberia-api/internal/audit"
	"github.com/barberia-app/barberia-api/internal/cache"
	domain "github.com/barberia-app/barberia-api/internal/domain/reservation"
	"github.com/barberia-app/barberia-api/internal/models"
	"github.com/barberia-app/barberia-api/internal/timezone"
)

type UpdateStatus struct {
	repo  domain.Repository
	tz    string
	audit *audit.Dispatcher
	slots *cache.SlotCache
}

func NewUpdateStatus(
	repo domain.Repository,
	tz string,
	auditD *audit.Dispatcher,
	slots *cache.SlotCache,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		tz:    tz,
		audit: auditD,
		slots: slots,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	id uint,
	statusStr string,
	cancelledBy string,
) (*models.Reservation, error) {

	status, err := domain.ParseStatus(statusStr)
	if err != nil {
		return nil, err
	}

	res, err := uc.repo.GetReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := domain.StatusPatch{Status: status}
	if status == domain.StatusCancelled {
		now := timezone.NowIn(uc.tz)
		patch.CancelledAt = &now
		if cancelledBy != "" {
			patch.CancelledBy = &cancelledBy
		}
	}

	err = uc.repo.Transact(ctx, func(tx domain.Repository) error {
		if err := tx.UpdateReservationStatus(ctx, id, patch); err != nil {
			return err
		}

		switch status {
		case domain.StatusCancelled:
			return tx.IncrementBarberCounter(ctx, res.BarberID, domain.CounterCancelled)
		case domain.StatusCompleted:
			return tx.IncrementBarberCounter(ctx, res.BarberID, domain.CounterCompleted)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if status == domain.StatusCancelled {
		// cancelling frees the slot
		uc.slots.Invalidate(ctx, res.BarberID, res.Date)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "reservation_status_changed",
		Entity:   "reservation",
		EntityID: &res.ID,
		Metadata: map[string]any{
			"from": res.Status,
			"to":   string(status),
		},
	})

	return uc.repo.GetReservation(ctx, id)
}
