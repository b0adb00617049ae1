package db

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/barberia-app/barberia-api/internal/config"
	"github.com/barberia-app/barberia-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Barber{},
		&models.Service{},
		&models.Product{},
		&models.Reservation{},
		&models.ReservationDetail{},
		&models.LoyaltyLedger{},
		&models.BarberUnavailability{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	// At most one non-cancelled reservation per (barber, date, time).
	// The in-transaction availability check handles the common case; this
	// index closes the check-then-insert race under read committed, so the
	// app must not come up without it.
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_reservations_active_slot
        ON reservations (barber_id, "date", "time")
        WHERE status <> 'cancelled'
    `).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to create reservation slot index")
	}

	return db
}
