package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/barberia-app/barberia-api/internal/audit"
	"github.com/barberia-app/barberia-api/internal/cache"
	"github.com/barberia-app/barberia-api/internal/config"
	"github.com/barberia-app/barberia-api/internal/handlers"
	infraRepo "github.com/barberia-app/barberia-api/internal/infra/repository"
	"github.com/barberia-app/barberia-api/internal/middleware"
	ucReservation "github.com/barberia-app/barberia-api/internal/usecase/reservation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	slotCache := cache.NewSlotCache(rdb, time.Duration(cfg.SlotCacheTTL)*time.Second)

	// ======================================================
	// USE CASES (RESERVATIONS)
	// ======================================================
	finalizeUC := ucReservation.NewFinalizeTotals(reservationRepo, auditDispatcher)

	createUC := ucReservation.NewCreateReservation(
		reservationRepo,
		cfg.Tiers(),
		cfg.Grid(),
		finalizeUC,
		auditDispatcher,
		slotCache,
	)

	updateStatusUC := ucReservation.NewUpdateStatus(
		reservationRepo,
		cfg.Timezone,
		auditDispatcher,
		slotCache,
	)

	availableSlotsUC := ucReservation.NewAvailableSlots(reservationRepo, cfg.Grid(), slotCache)
	loyaltyStatsUC := ucReservation.NewLoyaltyStats(reservationRepo, cfg.Tiers())
	queriesUC := ucReservation.NewQueries(reservationRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	roleHandler := handlers.NewRoleHandler(db)
	barberHandler := handlers.NewBarberHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	productHandler := handlers.NewProductHandler(db)
	unavailabilityHandler := handlers.NewUnavailabilityHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	reservationHandler := handlers.NewReservationHandler(
		createUC,
		finalizeUC,
		updateStatusUC,
		availableSlotsUC,
		loyaltyStatsUC,
		queriesUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC CATALOG
		// ------------------------------
		api.GET("/roles", roleHandler.List)
		api.GET("/roles/:id", roleHandler.GetByID)
		api.GET("/barbers", barberHandler.List)
		api.GET("/barbers/available", barberHandler.ListAvailable)
		api.GET("/barbers/:id", barberHandler.GetByID)
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.GetByID)
		api.GET("/products", productHandler.List)
		api.GET("/products/:id", productHandler.GetByID)

		// ------------------------------
		// RESERVATIONS
		// ------------------------------
		api.POST("/reservations", reservationHandler.Create)
		api.GET("/reservations", reservationHandler.List)
		api.GET("/reservations/available-slots", reservationHandler.AvailableSlots)
		api.GET("/reservations/stats", reservationHandler.Stats)
		api.GET("/reservations/status/:status", reservationHandler.ListByStatus)
		api.GET("/reservations/user/:user_id", reservationHandler.ListByUser)
		api.GET("/reservations/user/:user_id/loyalty-stats", reservationHandler.LoyaltyStats)
		api.GET("/reservations/guest/:phone", reservationHandler.ListByGuestPhone)
		api.GET("/reservations/barber/:barber_id", reservationHandler.ListByBarber)
		api.GET("/reservations/:id", reservationHandler.GetByID)
		api.PATCH("/reservations/:id/status", reservationHandler.UpdateStatus)
		api.POST("/reservations/:id/finalize", reservationHandler.Finalize)

		// ------------------------------
		// UNAVAILABILITY (reads)
		// ------------------------------
		api.GET("/unavailability/barber/:barber_id", unavailabilityHandler.ListByBarber)
		api.GET("/unavailability/date/:date", unavailabilityHandler.ListByDate)

		// ------------------------------
		// ADMIN
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/users", userHandler.List)
			secured.GET("/users/:id", userHandler.GetByID)
			secured.PATCH("/users/:id", userHandler.Update)
			secured.DELETE("/users/:id", userHandler.Delete)

			secured.POST("/barbers", barberHandler.Create)
			secured.PATCH("/barbers/:id", barberHandler.Update)
			secured.DELETE("/barbers/:id", barberHandler.Delete)

			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.POST("/products", productHandler.Create)
			secured.PATCH("/products/:id", productHandler.Update)
			secured.DELETE("/products/:id", productHandler.Delete)

			secured.POST("/unavailability", unavailabilityHandler.Create)
			secured.DELETE("/unavailability/:id", unavailabilityHandler.Delete)

			secured.DELETE("/reservations/:id", reservationHandler.Delete)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
