package reservation

import (
	"context"

	domain "github.com/barberia-app/barberia-api/internal/domain/reservation"
	"github.com/barberia-app/barberia-api/internal/dto"
)

// LoyaltyStats is the read-side loyalty projection. It reuses the same
// completed-reservation count and tier table as the booking write path.
type LoyaltyStats struct {
	repo  domain.Repository
	tiers domain.TierTable
}

func NewLoyaltyStats(
	repo domain.Repository,
	tiers domain.TierTable,
) *LoyaltyStats {
	return &LoyaltyStats{
		repo:  repo,
		tiers: tiers,
	}
}

func (uc *LoyaltyStats) Execute(
	ctx context.Context,
	userID uint,
) (*dto.LoyaltyStatsResponse, error) {

	completed, err := uc.repo.CountCompletedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	next, willBe := uc.tiers.Next(completed)

	uses, err := uc.repo.CountDiscountUses(ctx, userID)
	if err != nil {
		return nil, err
	}

	saved, err := uc.repo.SumDiscountSaved(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.LoyaltyStatsResponse{
		CompletedCount: completed,
		NextDiscount: dto.NextDiscountDTO{
			Applies:                 next.Applies,
			Percentage:              next.Percent,
			WillBeAppointmentNumber: willBe,
		},
		TimesDiscountUsed: uses,
		TotalSaved:        domain.RoundCents(saved),
	}, nil
}
