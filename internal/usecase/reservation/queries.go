package reservation

import (
	"context"

	domain "github.com/barberia-app/barberia-api/internal/domain/reservation"
	"github.com/barberia-app/barberia-api/internal/dto"
	"github.com/barberia-app/barberia-api/internal/models"
)

// Queries is the read-only projection surface over reservations. No
// business logic beyond filtering and sorting; it exposes what the write
// path keeps consistent.
type Queries struct {
	repo domain.Repository
}

func NewQueries(repo domain.Repository) *Queries {
	return &Queries{repo: repo}
}

func (q *Queries) GetByID(
	ctx context.Context,
	id uint,
) (*dto.ReservationWithDetails, error) {

	res, err := q.repo.GetReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	details, err := q.repo.ListDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ReservationWithDetails{
		Reservation: *res,
		Details:     details,
	}, nil
}

func (q *Queries) ListAll(ctx context.Context) ([]models.Reservation, error) {
	return q.repo.ListReservations(ctx)
}

func (q *Queries) ListByUser(ctx context.Context, userID uint) ([]models.Reservation, error) {
	return q.repo.ListByUser(ctx, userID)
}

func (q *Queries) ListByGuestPhone(ctx context.Context, phone string) ([]models.Reservation, error) {
	return q.repo.ListByGuestPhone(ctx, phone)
}

func (q *Queries) ListByBarber(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.Reservation, error) {
	return q.repo.ListByBarber(ctx, barberID, date)
}

func (q *Queries) ListByStatus(
	ctx context.Context,
	statusStr string,
) ([]models.Reservation, error) {

	status, err := domain.ParseStatus(statusStr)
	if err != nil {
		return nil, err
	}
	return q.repo.ListByStatus(ctx, status)
}

func (q *Queries) Stats(ctx context.Context) (*domain.Stats, error) {
	return q.repo.GetStats(ctx)
}

func (q *Queries) Delete(ctx context.Context, id uint) error {
	return q.repo.Transact(ctx, func(tx domain.Repository) error {
		return tx.DeleteReservation(ctx, id)
	})
}
