package reservation_test

import (
	"context"
	"sort"

	domain "github.com/barberia-app/barberia-api/internal/domain/reservation"
	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/models"
)

// fakeRepo is an in-memory stand-in for the gorm repository. Transact just
// runs fn against the same store, which is enough for single-goroutine
// use case tests; error injection hooks simulate storage failures.
type fakeRepo struct {
	barbers      map[uint]*models.Barber
	reservations map[uint]*models.Reservation
	details      map[uint][]models.ReservationDetail
	ledger       map[uint]*models.LoyaltyLedger
	windows      []models.BarberUnavailability

	nextID uint

	errSumDetailPrices error
	errCreateLedger    error

	// ledgerRace makes HasLedgerEntry report no entry even when one
	// exists, like a concurrent finalize committing between the check
	// and the insert.
	ledgerRace bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		barbers:      make(map[uint]*models.Barber),
		reservations: make(map[uint]*models.Reservation),
		details:      make(map[uint][]models.ReservationDetail),
		ledger:       make(map[uint]*models.LoyaltyLedger),
	}
}

func (f *fakeRepo) addBarber(id uint) *models.Barber {
	b := &models.Barber{ID: id, StageName: "Test Barber", Available: true}
	f.barbers[id] = b
	return b
}

func (f *fakeRepo) seedReservation(r models.Reservation) *models.Reservation {
	f.nextID++
	r.ID = f.nextID
	f.reservations[r.ID] = &r
	return &r
}

func (f *fakeRepo) Transact(ctx context.Context, fn func(domain.Repository) error) error {
	return fn(f)
}

func (f *fakeRepo) GetBarber(ctx context.Context, id uint) (*models.Barber, error) {
	b, ok := f.barbers[id]
	if !ok {
		return nil, httperr.ErrNotFound("barber_not_found")
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepo) IncrementBarberCounter(
	ctx context.Context,
	barberID uint,
	counter domain.BarberCounter,
) error {
	b, ok := f.barbers[barberID]
	if !ok {
		return httperr.ErrNotFound("barber_not_found")
	}
	switch counter {
	case domain.CounterTotal:
		b.TotalAppointments++
	case domain.CounterCompleted:
		b.CompletedAppointments++
	case domain.CounterCancelled:
		b.CancelledAppointments++
	}
	return nil
}

func (f *fakeRepo) SlotTaken(
	ctx context.Context,
	barberID uint,
	date string,
	timeOfDay string,
) (bool, error) {
	for _, r := range f.reservations {
		if r.BarberID == barberID && r.Date == date && r.Time == timeOfDay &&
			r.Status != "cancelled" {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) ListOccupiedTimes(
	ctx context.Context,
	barberID uint,
	date string,
) ([]string, error) {
	var out []string
	for _, r := range f.reservations {
		if r.BarberID == barberID && r.Date == date && r.Status != "cancelled" {
			out = append(out, r.Time)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeRepo) ListUnavailability(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.BarberUnavailability, error) {
	var out []models.BarberUnavailability
	for _, w := range f.windows {
		if w.BarberID == barberID && w.Date == date {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeRepo) CountCompletedByUser(ctx context.Context, userID uint) (int, error) {
	n := 0
	for _, r := range f.reservations {
		if r.UserID != nil && *r.UserID == userID && r.Status == "completed" {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) CountDiscountUses(ctx context.Context, userID uint) (int, error) {
	n := 0
	for _, r := range f.reservations {
		if r.UserID != nil && *r.UserID == userID && r.AppliesDiscount {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) SumDiscountSaved(ctx context.Context, userID uint) (float64, error) {
	var sum float64
	for _, r := range f.reservations {
		if r.UserID != nil && *r.UserID == userID && r.AppliesDiscount {
			sum += r.DiscountAmount
		}
	}
	return sum, nil
}

func (f *fakeRepo) HasLedgerEntry(ctx context.Context, reservationID uint) (bool, error) {
	if f.ledgerRace {
		return false, nil
	}
	_, ok := f.ledger[reservationID]
	return ok, nil
}

func (f *fakeRepo) CreateLedgerEntry(ctx context.Context, entry *models.LoyaltyLedger) (bool, error) {
	if f.errCreateLedger != nil {
		return false, f.errCreateLedger
	}
	if _, ok := f.ledger[entry.ReservationID]; ok {
		// unique index on reservation_id: the earlier grant stands
		return false, nil
	}
	copied := *entry
	f.ledger[entry.ReservationID] = &copied
	return true, nil
}

func (f *fakeRepo) CreateReservation(ctx context.Context, res *models.Reservation) error {
	f.nextID++
	res.ID = f.nextID
	copied := *res
	f.reservations[res.ID] = &copied
	return nil
}

func (f *fakeRepo) CreateDetails(ctx context.Context, details []models.ReservationDetail) error {
	if len(details) == 0 {
		return nil
	}
	id := details[0].ReservationID
	f.details[id] = append(f.details[id], details...)
	return nil
}

func (f *fakeRepo) SumDetailPrices(ctx context.Context, reservationID uint) (float64, error) {
	if f.errSumDetailPrices != nil {
		return 0, f.errSumDetailPrices
	}
	var sum float64
	for _, d := range f.details[reservationID] {
		sum += d.UnitPrice
	}
	return sum, nil
}

func (f *fakeRepo) UpdateTotals(
	ctx context.Context,
	reservationID uint,
	subtotal float64,
	discountAmount float64,
	total float64,
) error {
	r, ok := f.reservations[reservationID]
	if !ok {
		return httperr.ErrNotFound("reservation_not_found")
	}
	r.Subtotal = subtotal
	r.DiscountAmount = discountAmount
	r.Total = total
	return nil
}

func (f *fakeRepo) UpdateReservationStatus(
	ctx context.Context,
	reservationID uint,
	patch domain.StatusPatch,
) error {
	r, ok := f.reservations[reservationID]
	if !ok {
		return httperr.ErrNotFound("reservation_not_found")
	}
	r.Status = string(patch.Status)
	r.CancelledAt = patch.CancelledAt
	r.CancelledBy = patch.CancelledBy
	return nil
}

func (f *fakeRepo) DeleteReservation(ctx context.Context, reservationID uint) error {
	if _, ok := f.reservations[reservationID]; !ok {
		return httperr.ErrNotFound("reservation_not_found")
	}
	delete(f.reservations, reservationID)
	delete(f.details, reservationID)
	return nil
}

func (f *fakeRepo) GetReservation(ctx context.Context, id uint) (*models.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, httperr.ErrNotFound("reservation_not_found")
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRepo) ListDetails(
	ctx context.Context,
	reservationID uint,
) ([]models.ReservationDetail, error) {
	return f.details[reservationID], nil
}

func (f *fakeRepo) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	return f.collect(func(*models.Reservation) bool { return true }), nil
}

func (f *fakeRepo) ListByUser(ctx context.Context, userID uint) ([]models.Reservation, error) {
	return f.collect(func(r *models.Reservation) bool {
		return r.UserID != nil && *r.UserID == userID
	}), nil
}

func (f *fakeRepo) ListByGuestPhone(ctx context.Context, phone string) ([]models.Reservation, error) {
	return f.collect(func(r *models.Reservation) bool {
		return r.IsGuest && r.GuestPhone == phone
	}), nil
}

func (f *fakeRepo) ListByBarber(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.Reservation, error) {
	return f.collect(func(r *models.Reservation) bool {
		return r.BarberID == barberID && (date == "" || r.Date == date)
	}), nil
}

func (f *fakeRepo) ListByStatus(
	ctx context.Context,
	status domain.Status,
) ([]models.Reservation, error) {
	return f.collect(func(r *models.Reservation) bool {
		return r.Status == string(status)
	}), nil
}

func (f *fakeRepo) GetStats(ctx context.Context) (*domain.Stats, error) {
	stats := &domain.Stats{}
	for _, r := range f.reservations {
		stats.Total++
		if r.IsGuest {
			stats.Guests++
		} else {
			stats.Registered++
		}
		switch r.Status {
		case "pending":
			stats.Pending++
		case "confirmed":
			stats.Confirmed++
		case "completed":
			stats.Completed++
		case "cancelled":
			stats.Cancelled++
		}
		if r.AppliesDiscount {
			stats.WithDiscount++
		}
		// SUM(discount_amount) and SUM(total) over every row
		stats.DiscountsGranted += r.DiscountAmount
		stats.Revenue += r.Total
	}
	return stats, nil
}

func (f *fakeRepo) collect(keep func(*models.Reservation) bool) []models.Reservation {
	var out []models.Reservation
	for _, r := range f.reservations {
		if keep(r) {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

var _ domain.Repository = (*fakeRepo)(nil)
