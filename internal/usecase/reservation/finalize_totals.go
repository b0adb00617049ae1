package reservation

import (
	"context"

	"github.com/barberia-app/barberia-api/internal/audit"
	domain "github.com/barberia-app/barberia-api/internal/domain/reservation"
	"github.com/barberia-app/barberia-api/internal/dto"
	"github.com/barberia-app/barberia-api/internal/models"
)

// FinalizeTotals recomputes subtotal/discount/total from the persisted
// line items and writes them onto the reservation, recording a loyalty
// ledger entry when a discount was granted. Idempotent: re-running it for
// the same reservation and line items stores the same values and never
// duplicates the ledger entry, so it doubles as the repair path for
// bookings left in the totals-pending window.
type FinalizeTotals struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewFinalizeTotals(
	repo domain.Repository,
	auditD *audit.Dispatcher,
) *FinalizeTotals {
	return &FinalizeTotals{
		repo:  repo,
		audit: auditD,
	}
}

func (uc *FinalizeTotals) Execute(
	ctx context.Context,
	reservationID uint,
) (*dto.ReservationWithDetails, error) {

	var granted bool

	err := uc.repo.Transact(ctx, func(tx domain.Repository) error {
		res, err := tx.GetReservation(ctx, reservationID)
		if err != nil {
			return err
		}

		subtotal, err := tx.SumDetailPrices(ctx, reservationID)
		if err != nil {
			return err
		}
		subtotal = domain.RoundCents(subtotal)

		discount := 0.0
		if res.AppliesDiscount && res.DiscountPercent > 0 {
			discount = domain.DiscountAmount(subtotal, res.DiscountPercent)
		}
		total := domain.RoundCents(subtotal - discount)

		if err := tx.UpdateTotals(ctx, reservationID, subtotal, discount, total); err != nil {
			return err
		}

		// Ledger only for registered users with an applied discount, and
		// at most once per reservation.
		if res.AppliesDiscount && res.UserID != nil {
			exists, err := tx.HasLedgerEntry(ctx, reservationID)
			if err != nil {
				return err
			}
			if !exists {
				created, err := tx.CreateLedgerEntry(ctx, &models.LoyaltyLedger{
					ReservationID:    reservationID,
					UserID:           *res.UserID,
					CompletedAtGrant: res.CompletedPrior,
					Percent:          res.DiscountPercent,
					DiscountAmount:   discount,
					Subtotal:         subtotal,
					Total:            total,
				})
				if err != nil {
					return err
				}
				// A losing race means another finalize recorded the grant;
				// only the writer reports it.
				granted = created
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	res, err := uc.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	details, err := uc.repo.ListDetails(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if granted {
		uc.audit.Dispatch(audit.Event{
			UserID:   res.UserID,
			Action:   "discount_granted",
			Entity:   "reservation",
			EntityID: &res.ID,
			Metadata: map[string]any{
				"percent": res.DiscountPercent,
				"amount":  res.DiscountAmount,
			},
		})
	}

	return &dto.ReservationWithDetails{
		Reservation: *res,
		Details:     details,
	}, nil
}
