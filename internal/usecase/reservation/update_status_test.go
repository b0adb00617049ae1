package reservation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/models"
	"github.com/barberia-app/barberia-api/internal/timezone"
	usecase "github.com/barberia-app/barberia-api/internal/usecase/reservation"
)

func newUpdateStatusUC(repo *fakeRepo) *usecase.UpdateStatus {
	return usecase.NewUpdateStatus(repo, timezone.DefaultTimezone, nil, nil)
}

func TestUpdateStatus_Complete(t *testing.T) {
	repo := newFakeRepo()
	repo.addBarber(1)
	res := repo.seedReservation(models.Reservation{
		Code:     "res-1",
		UserID:   uintPtr(7),
		BarberID: 1,
		Date:     "2026-03-14",
		Time:     "10:00",
		Status:   "confirmed",
	})

	uc := newUpdateStatusUC(repo)

	out, err := uc.Execute(context.Background(), res.ID, "completed", "")
	require.NoError(t, err)
	assert.Equal(t, "completed", out.Status)
	assert.Nil(t, out.CancelledAt)
	assert.Equal(t, 1, repo.barbers[1].CompletedAppointments)
	assert.Equal(t, 0, repo.barbers[1].CancelledAppointments)
}

func TestUpdateStatus_Cancel(t *testing.T) {
	repo := newFakeRepo()
	repo.addBarber(1)
	res := repo.seedReservation(models.Reservation{
		Code:     "res-2",
		UserID:   uintPtr(7),
		BarberID: 1,
		Date:     "2026-03-14",
		Time:     "10:00",
		Status:   "pending",
	})

	uc := newUpdateStatusUC(repo)

	out, err := uc.Execute(context.Background(), res.ID, "cancelled", "client")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", out.Status)
	require.NotNil(t, out.CancelledAt)
	require.NotNil(t, out.CancelledBy)
	assert.Equal(t, "client", *out.CancelledBy)
	assert.Equal(t, 1, repo.barbers[1].CancelledAppointments)

	// the slot is bookable again
	taken, err := repo.SlotTaken(context.Background(), 1, "2026-03-14", "10:00")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestUpdateStatus_ConfirmHasNoCounterSideEffect(t *testing.T) {
	repo := newFakeRepo()
	repo.addBarber(1)
	res := repo.seedReservation(models.Reservation{
		Code:     "res-3",
		UserID:   uintPtr(7),
		BarberID: 1,
		Date:     "2026-03-14",
		Time:     "10:00",
		Status:   "pending",
	})

	uc := newUpdateStatusUC(repo)

	out, err := uc.Execute(context.Background(), res.ID, "confirmed", "")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", out.Status)
	assert.Equal(t, 0, repo.barbers[1].CompletedAppointments)
	assert.Equal(t, 0, repo.barbers[1].CancelledAppointments)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := newFakeRepo()
	uc := newUpdateStatusUC(repo)

	_, err := uc.Execute(context.Background(), 1, "done", "")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := newUpdateStatusUC(repo)

	_, err := uc.Execute(context.Background(), 42, "confirmed", "")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "reservation_not_found"))
}
