package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barberia-app/barberia-api/internal/domain/reservation"
	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// Transact rebinds the repository to a gorm transaction for the duration
// of fn. gorm rolls back on error or panic and commits on nil, so the
// boundary lives here and nowhere else.
func (r *ReservationGormRepository) Transact(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ReservationGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *ReservationGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("barber_not_found")
		}
		return nil, err
	}
	return &barber, nil
}

func (r *ReservationGormRepository) IncrementBarberCounter(
	ctx context.Context,
	barberID uint,
	counter domain.BarberCounter,
) error {
	// counter comes from a closed enum, never from request input, so the
	// column name is safe to splice; the increment itself runs as a
	// single atomic UPDATE to avoid lost updates between concurrent
	// requests.
	col := string(counter)
	return r.db.WithContext(ctx).
		Model(&models.Barber{}).
		Where("id = ?", barberID).
		UpdateColumn(col, gorm.Expr(col+" + 1")).Error
}

// --------------------------------------------------
// Slot availability
// --------------------------------------------------

func (r *ReservationGormRepository) SlotTaken(
	ctx context.Context,
	barberID uint,
	date string,
	timeOfDay string,
) (bool, error) {

	// Row lock so two transactions checking the same slot serialize; the
	// partial unique index remains as defense in depth for the case where
	// neither sees a row to lock.
	var existing []models.Reservation
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"barber_id = ? AND date = ? AND time = ? AND status <> ?",
			barberID, date, timeOfDay, string(domain.StatusCancelled),
		).
		Find(&existing).Error; err != nil {
		return false, err
	}

	return len(existing) > 0, nil
}

func (r *ReservationGormRepository) ListOccupiedTimes(
	ctx context.Context,
	barberID uint,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where(
			"barber_id = ? AND date = ? AND status <> ?",
			barberID, date, string(domain.StatusCancelled),
		).
		Order("time ASC").
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}
	return times, nil
}

func (r *ReservationGormRepository) ListUnavailability(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.BarberUnavailability, error) {

	var windows []models.BarberUnavailability
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND date = ?", barberID, date).
		Order("start_time ASC").
		Find(&windows).Error; err != nil {
		return nil, err
	}
	return windows, nil
}

// --------------------------------------------------
// Loyalty
// --------------------------------------------------

func (r *ReservationGormRepository) CountCompletedByUser(
	ctx context.Context,
	userID uint,
) (int, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where(
			"user_id = ? AND is_guest = false AND status = ?",
			userID, string(domain.StatusCompleted),
		).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *ReservationGormRepository) CountDiscountUses(
	ctx context.Context,
	userID uint,
) (int, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("user_id = ? AND applies_discount = true", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *ReservationGormRepository) SumDiscountSaved(
	ctx context.Context,
	userID uint,
) (float64, error) {

	var total float64
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("user_id = ? AND applies_discount = true", userID).
		Select("COALESCE(SUM(discount_amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *ReservationGormRepository) HasLedgerEntry(
	ctx context.Context,
	reservationID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.LoyaltyLedger{}).
		Where("reservation_id = ?", reservationID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ReservationGormRepository) CreateLedgerEntry(
	ctx context.Context,
	entry *models.LoyaltyLedger,
) (bool, error) {
	err := r.db.WithContext(ctx).Create(entry).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// A concurrent finalize already recorded this grant.
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// --------------------------------------------------
// Reservation (write)
// --------------------------------------------------

func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	err := r.db.WithContext(ctx).Create(res).Error
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return httperr.ErrConflict("slot_taken")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return httperr.ErrIntegrity("related_resource_invalid")
	}
	return err
}

func (r *ReservationGormRepository) CreateDetails(
	ctx context.Context,
	details []models.ReservationDetail,
) error {
	if len(details) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Create(&details).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return httperr.ErrIntegrity("related_resource_invalid")
	}
	return err
}

func (r *ReservationGormRepository) SumDetailPrices(
	ctx context.Context,
	reservationID uint,
) (float64, error) {

	var subtotal float64
	if err := r.db.WithContext(ctx).
		Model(&models.ReservationDetail{}).
		Where("reservation_id = ?", reservationID).
		Select("COALESCE(SUM(unit_price), 0)").
		Scan(&subtotal).Error; err != nil {
		return 0, err
	}
	return subtotal, nil
}

func (r *ReservationGormRepository) UpdateTotals(
	ctx context.Context,
	reservationID uint,
	subtotal float64,
	discountAmount float64,
	total float64,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ?", reservationID).
		Updates(map[string]any{
			"subtotal":        subtotal,
			"discount_amount": discountAmount,
			"total":           total,
		}).Error
}

func (r *ReservationGormRepository) UpdateReservationStatus(
	ctx context.Context,
	reservationID uint,
	patch domain.StatusPatch,
) error {

	updates := map[string]any{"status": string(patch.Status)}
	if patch.CancelledAt != nil {
		updates["cancelled_at"] = patch.CancelledAt
	}
	if patch.CancelledBy != nil {
		updates["cancelled_by"] = patch.CancelledBy
	}

	result := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ?", reservationID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return httperr.ErrNotFound("reservation_not_found")
	}
	return nil
}

func (r *ReservationGormRepository) DeleteReservation(
	ctx context.Context,
	reservationID uint,
) error {
	result := r.db.WithContext(ctx).
		Where("reservation_id = ?", reservationID).
		Delete(&models.ReservationDetail{})
	if result.Error != nil {
		return result.Error
	}

	result = r.db.WithContext(ctx).Delete(&models.Reservation{}, reservationID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return httperr.ErrNotFound("reservation_not_found")
	}
	return nil
}

// --------------------------------------------------
// Reservation (read)
// --------------------------------------------------

func (r *ReservationGormRepository) GetReservation(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("User").
		First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("reservation_not_found")
		}
		return nil, err
	}
	return &res, nil
}

func (r *ReservationGormRepository) ListDetails(
	ctx context.Context,
	reservationID uint,
) ([]models.ReservationDetail, error) {

	var details []models.ReservationDetail
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Product").
		Where("reservation_id = ?", reservationID).
		Order("id ASC").
		Find(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

func (r *ReservationGormRepository) ListReservations(
	ctx context.Context,
) ([]models.Reservation, error) {
	return r.list(ctx, r.db.WithContext(ctx).
		Order("date DESC, time DESC"))
}

func (r *ReservationGormRepository) ListByUser(
	ctx context.Context,
	userID uint,
) ([]models.Reservation, error) {
	return r.list(ctx, r.db.WithContext(ctx).
		Where("user_id = ? AND is_guest = false", userID).
		Order("date DESC, time DESC"))
}

func (r *ReservationGormRepository) ListByGuestPhone(
	ctx context.Context,
	phone string,
) ([]models.Reservation, error) {
	return r.list(ctx, r.db.WithContext(ctx).
		Where("guest_phone = ? AND is_guest = true", phone).
		Order("date DESC, time DESC"))
}

func (r *ReservationGormRepository) ListByBarber(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.Reservation, error) {

	q := r.db.WithContext(ctx).Where("barber_id = ?", barberID)
	if date != "" {
		q = q.Where("date = ?", date)
	}
	return r.list(ctx, q.Order("date ASC, time ASC"))
}

func (r *ReservationGormRepository) ListByStatus(
	ctx context.Context,
	status domain.Status,
) ([]models.Reservation, error) {
	return r.list(ctx, r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("date ASC, time ASC"))
}

func (r *ReservationGormRepository) list(
	_ context.Context,
	q *gorm.DB,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := q.
		Preload("Barber").
		Preload("User").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReservationGormRepository) GetStats(
	ctx context.Context,
) (*domain.Stats, error) {

	var stats domain.Stats
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*)                                              AS total,
			COUNT(*) FILTER (WHERE is_guest = false)              AS registered,
			COUNT(*) FILTER (WHERE is_guest = true)               AS guests,
			COUNT(*) FILTER (WHERE status = 'pending')            AS pending,
			COUNT(*) FILTER (WHERE status = 'confirmed')          AS confirmed,
			COUNT(*) FILTER (WHERE status = 'completed')          AS completed,
			COUNT(*) FILTER (WHERE status = 'cancelled')          AS cancelled,
			COUNT(*) FILTER (WHERE applies_discount = true)       AS with_discount,
			COALESCE(SUM(discount_amount), 0)                     AS discounts_granted,
			COALESCE(SUM(total), 0)                               AS revenue
		FROM reservations
	`).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
