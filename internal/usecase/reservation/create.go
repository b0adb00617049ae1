package reservation

import (
	"context"

	"github.com/google/uuid"

	"github.com/barberia-app/barberia-api/internal/audit"
	"github.com/barberia-app/barberia-api/internal/cache"
	domain "github.com/barberia-app/barberia-api/internal/domain/reservation"
	"github.com/barberia-app/barberia-api/internal/dto"
	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// ItemInput references a catalog item with the price captured from the
// catalog at request time; the price is frozen into the line item.
type ItemInput struct {
	ID    uint    `json:"id"`
	Price float64 `json:"price"`
}

type CreateReservationInput struct {
	UserID *uint

	IsGuest    bool
	GuestName  string
	GuestPhone string
	GuestEmail string

	BarberID uint
	Date     string
	Time     string
	Notes    string

	Services []ItemInput
	Products []ItemInput
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo     domain.Repository
	tiers    domain.TierTable
	grid     domain.SlotGrid
	finalize *FinalizeTotals
	audit    *audit.Dispatcher
	slots    *cache.SlotCache
}

func NewCreateReservation(
	repo domain.Repository,
	tiers domain.TierTable,
	grid domain.SlotGrid,
	finalize *FinalizeTotals,
	auditD *audit.Dispatcher,
	slots *cache.SlotCache,
) *CreateReservation {
	return &CreateReservation{
		repo:     repo,
		tiers:    tiers,
		grid:     grid,
		finalize: finalize,
		audit:    auditD,
		slots:    slots,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*dto.ReservationWithDetails, error) {

	// --------------------------------------------------
	// 1. Validation, before any database work
	// --------------------------------------------------
	if err := uc.validate(in); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Barber must exist
	// --------------------------------------------------
	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Unavailability windows. Advisory: read outside the booking
	//    transaction, windows change far less often than bookings.
	// --------------------------------------------------
	windows, err := uc.repo.ListUnavailability(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}
	if domain.AnyWindowBlocks(windows, in.Time) {
		return nil, httperr.ErrConflict("barber_unavailable")
	}

	// --------------------------------------------------
	// 4. Atomic sequence: re-check slot, snapshot loyalty, insert
	//    header + line items, bump barber counter.
	// --------------------------------------------------
	res := &models.Reservation{
		Code:       uuid.NewString(),
		UserID:     in.UserID,
		IsGuest:    in.IsGuest,
		GuestName:  in.GuestName,
		GuestPhone: in.GuestPhone,
		GuestEmail: in.GuestEmail,
		BarberID:   barber.ID,
		Date:       in.Date,
		Time:       in.Time,
		Status:     string(domain.InitialStatus()),
		Notes:      in.Notes,
	}

	err = uc.repo.Transact(ctx, func(tx domain.Repository) error {
		taken, err := tx.SlotTaken(ctx, in.BarberID, in.Date, in.Time)
		if err != nil {
			return err
		}
		if taken {
			return httperr.ErrConflict("slot_taken")
		}

		if !in.IsGuest {
			completed, err := tx.CountCompletedByUser(ctx, *in.UserID)
			if err != nil {
				return err
			}
			disc := uc.tiers.Compute(completed)
			res.CompletedPrior = completed
			res.AppliesDiscount = disc.Applies
			res.DiscountPercent = disc.Percent
		}

		if err := tx.CreateReservation(ctx, res); err != nil {
			return err
		}

		details := buildDetails(res.ID, in.Services, in.Products)
		if err := tx.CreateDetails(ctx, details); err != nil {
			return err
		}

		return tx.IncrementBarberCounter(ctx, barber.ID, domain.CounterTotal)
	})
	if err != nil {
		if httperr.IsBusiness(err, "slot_taken") {
			uc.audit.Dispatch(audit.Event{
				UserID: in.UserID,
				Action: "reservation_conflict",
				Entity: "reservation",
				Metadata: map[string]any{
					"barber_id": in.BarberID,
					"date":      in.Date,
					"time":      in.Time,
				},
			})
		}
		return nil, err
	}

	uc.slots.Invalidate(ctx, in.BarberID, in.Date)
	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	// --------------------------------------------------
	// 5. Totals. Separate atomic step: its failure leaves a committed
	//    booking with zero totals, reported as totals_pending rather
	//    than masked as a create failure.
	// --------------------------------------------------
	out, err := uc.finalize.Execute(ctx, res.ID)
	if err != nil {
		details, derr := uc.repo.ListDetails(ctx, res.ID)
		if derr != nil {
			details = nil
		}
		return &dto.ReservationWithDetails{
			Reservation:   *res,
			Details:       details,
			TotalsPending: true,
		}, httperr.ErrTotalsPending(err)
	}

	return out, nil
}

func (uc *CreateReservation) validate(in CreateReservationInput) error {
	if in.BarberID == 0 {
		return httperr.ErrValidation("barber_required")
	}
	if !domain.ValidDate(in.Date) {
		return httperr.ErrValidation("invalid_date")
	}
	if !uc.grid.Contains(in.Time) {
		return httperr.ErrValidation("invalid_time")
	}

	if in.IsGuest {
		if in.UserID != nil {
			return httperr.ErrValidation("guest_and_user_exclusive")
		}
		if in.GuestName == "" || in.GuestPhone == "" {
			return httperr.ErrValidation("guest_identity_required")
		}
	} else {
		if in.UserID == nil {
			return httperr.ErrValidation("user_required")
		}
		if in.GuestName != "" || in.GuestPhone != "" {
			return httperr.ErrValidation("guest_and_user_exclusive")
		}
	}

	for _, s := range in.Services {
		if s.ID == 0 || s.Price < 0 {
			return httperr.ErrValidation("invalid_service_item")
		}
	}
	for _, p := range in.Products {
		if p.ID == 0 || p.Price < 0 {
			return httperr.ErrValidation("invalid_product_item")
		}
	}
	return nil
}

func buildDetails(
	reservationID uint,
	services []ItemInput,
	products []ItemInput,
) []models.ReservationDetail {

	details := make([]models.ReservationDetail, 0, len(services)+len(products))
	for _, s := range services {
		id := s.ID
		details = append(details, models.ReservationDetail{
			ReservationID: reservationID,
			Kind:          "service",
			ServiceID:     &id,
			UnitPrice:     s.Price,
		})
	}
	for _, p := range products {
		id := p.ID
		details = append(details, models.ReservationDetail{
			ReservationID: reservationID,
			Kind:          "product",
			ProductID:     &id,
			UnitPrice:     p.Price,
		})
	}
	return details
}
