package reservation

import (
	"context"
	"time"

	"github.com/barberia-app/barberia-api/internal/models"
)

// BarberCounter selects which running counter on the barber row an atomic
// increment targets.
type BarberCounter string

const (
	CounterTotal     BarberCounter = "total_appointments"
	CounterCompleted BarberCounter = "completed_appointments"
	CounterCancelled BarberCounter = "cancelled_appointments"
)

// StatusPatch is the explicit update set for a status transition. Only
// non-nil optional fields are written; the storage layer translates it
// into a parameterized update, never string-built SQL.
type StatusPatch struct {
	Status      Status
	CancelledAt *time.Time
	CancelledBy *string
}

// Stats is the aggregate reservation report.
type Stats struct {
	Total      int64 `json:"total"`
	Registered int64 `json:"registered"`
	Guests     int64 `json:"guests"`

	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`

	WithDiscount     int64   `json:"with_discount"`
	DiscountsGranted float64 `json:"discounts_granted"`
	Revenue          float64 `json:"revenue"`
}

type Repository interface {
	// Transact runs fn against a repository bound to a single database
	// transaction. fn's repository must be used for every statement that
	// belongs to the atomic sequence; any error rolls the whole thing
	// back, a nil return commits at this one boundary.
	Transact(ctx context.Context, fn func(Repository) error) error

	// -------- Barber --------
	GetBarber(ctx context.Context, id uint) (*models.Barber, error)

	IncrementBarberCounter(
		ctx context.Context,
		barberID uint,
		counter BarberCounter,
	) error

	// -------- Slot availability --------
	SlotTaken(
		ctx context.Context,
		barberID uint,
		date string,
		timeOfDay string,
	) (bool, error)

	ListOccupiedTimes(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]string, error)

	ListUnavailability(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]models.BarberUnavailability, error)

	// -------- Loyalty --------
	CountCompletedByUser(ctx context.Context, userID uint) (int, error)

	CountDiscountUses(ctx context.Context, userID uint) (int, error)

	SumDiscountSaved(ctx context.Context, userID uint) (float64, error)

	HasLedgerEntry(ctx context.Context, reservationID uint) (bool, error)

	// CreateLedgerEntry reports whether it actually recorded the grant:
	// false when a concurrent finalize won the unique-index race, so the
	// caller never claims a grant it did not make.
	CreateLedgerEntry(ctx context.Context, entry *models.LoyaltyLedger) (bool, error)

	// -------- Reservation (write) --------
	CreateReservation(ctx context.Context, res *models.Reservation) error

	CreateDetails(ctx context.Context, details []models.ReservationDetail) error

	SumDetailPrices(ctx context.Context, reservationID uint) (float64, error)

	UpdateTotals(
		ctx context.Context,
		reservationID uint,
		subtotal float64,
		discountAmount float64,
		total float64,
	) error

	UpdateReservationStatus(
		ctx context.Context,
		reservationID uint,
		patch StatusPatch,
	) error

	DeleteReservation(ctx context.Context, reservationID uint) error

	// -------- Reservation (read) --------
	GetReservation(ctx context.Context, id uint) (*models.Reservation, error)

	ListDetails(ctx context.Context, reservationID uint) ([]models.ReservationDetail, error)

	ListReservations(ctx context.Context) ([]models.Reservation, error)

	ListByUser(ctx context.Context, userID uint) ([]models.Reservation, error)

	ListByGuestPhone(ctx context.Context, phone string) ([]models.Reservation, error)

	ListByBarber(ctx context.Context, barberID uint, date string) ([]models.Reservation, error)

	ListByStatus(ctx context.Context, status Status) ([]models.Reservation, error)

	GetStats(ctx context.Context) (*Stats, error)
}
