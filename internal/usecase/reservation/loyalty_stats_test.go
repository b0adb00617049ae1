package reservation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/barberia-app/barberia-api/internal/domain/reservation"
	"github.com/barberia-app/barberia-api/internal/models"
	usecase "github.com/barberia-app/barberia-api/internal/usecase/reservation"
)

func TestLoyaltyStats_NewUser(t *testing.T) {
	repo := newFakeRepo()
	uc := usecase.NewLoyaltyStats(repo, domain.DefaultTiers())

	out, err := uc.Execute(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 0, out.CompletedCount)
	assert.False(t, out.NextDiscount.Applies)
	assert.Equal(t, 1, out.NextDiscount.WillBeAppointmentNumber)
	assert.Equal(t, 0, out.TimesDiscountUsed)
	assert.Equal(t, 0.0, out.TotalSaved)
}

func TestLoyaltyStats_NextAppointmentDiscounted(t *testing.T) {
	repo := newFakeRepo()
	repo.addBarber(1)
	seedCompleted(repo, 7, 1, 9)

	uc := usecase.NewLoyaltyStats(repo, domain.DefaultTiers())

	out, err := uc.Execute(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 9, out.CompletedCount)
	assert.True(t, out.NextDiscount.Applies)
	assert.Equal(t, 20.0, out.NextDiscount.Percentage)
	assert.Equal(t, 10, out.NextDiscount.WillBeAppointmentNumber)
}

func TestLoyaltyStats_UsesAndSavings(t *testing.T) {
	// uses and savings come from discounted reservations, not the ledger
	repo := newFakeRepo()
	repo.seedReservation(models.Reservation{
		Code: "a", UserID: uintPtr(7), BarberID: 1,
		Date: "2026-01-02", Time: "09:00", Status: "completed",
		AppliesDiscount: true, DiscountAmount: 20,
	})
	repo.seedReservation(models.Reservation{
		Code: "b", UserID: uintPtr(7), BarberID: 1,
		Date: "2026-02-02", Time: "09:00", Status: "pending",
		AppliesDiscount: true, DiscountAmount: 15.51,
	})
	repo.seedReservation(models.Reservation{
		Code: "c", UserID: uintPtr(7), BarberID: 1,
		Date: "2026-02-03", Time: "09:00", Status: "completed",
	})
	repo.seedReservation(models.Reservation{
		Code: "d", UserID: uintPtr(9), BarberID: 1,
		Date: "2026-02-04", Time: "09:00", Status: "completed",
		AppliesDiscount: true, DiscountAmount: 99,
	})

	uc := usecase.NewLoyaltyStats(repo, domain.DefaultTiers())

	out, err := uc.Execute(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 2, out.TimesDiscountUsed)
	assert.Equal(t, 35.51, out.TotalSaved)
}

func TestLoyaltyStats_CountsAcrossBarbers(t *testing.T) {
	repo := newFakeRepo()
	repo.seedReservation(models.Reservation{
		Code: "a", UserID: uintPtr(7), BarberID: 1,
		Date: "2026-01-02", Time: "09:00", Status: "completed",
	})
	repo.seedReservation(models.Reservation{
		Code: "b", UserID: uintPtr(7), BarberID: 2,
		Date: "2026-01-03", Time: "09:00", Status: "completed",
	})
	repo.seedReservation(models.Reservation{
		Code: "c", UserID: uintPtr(7), BarberID: 1,
		Date: "2026-01-04", Time: "09:00", Status: "cancelled",
	})

	uc := usecase.NewLoyaltyStats(repo, domain.DefaultTiers())

	out, err := uc.Execute(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 2, out.CompletedCount)
}
