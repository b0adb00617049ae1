package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/barberia-app/barberia-api/internal/domain/reservation"
	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/httpresp"
	"github.com/barberia-app/barberia-api/internal/models"
)

type UnavailabilityHandler struct {
	db *gorm.DB
}

func NewUnavailabilityHandler(db *gorm.DB) *UnavailabilityHandler {
	return &UnavailabilityHandler{db: db}
}

type CreateUnavailabilityRequest struct {
	BarberID  uint    `json:"barber_id" binding:"required"`
	Date      string  `json:"date" binding:"required"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Reason    string  `json:"reason"`
}

func (h *UnavailabilityHandler) Create(c *gin.Context) {
	var req CreateUnavailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Barber and date are required.")
		return
	}

	if !domain.ValidDate(req.Date) {
		httperr.BadRequest(c, "invalid_date", "Date must be a valid YYYY-MM-DD calendar date.")
		return
	}

	// A start time without an end time would block nothing; reject it
	// instead of storing a window nobody can interpret.
	if req.StartTime != nil && *req.StartTime != "" && (req.EndTime == nil || *req.EndTime == "") {
		httperr.BadRequest(c, "end_time_required", "End time is required with a start time.")
		return
	}

	window := models.BarberUnavailability{
		BarberID:  req.BarberID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
	}

	if err := h.db.Create(&window).Error; err != nil {
		httperr.BadRequest(c, "related_resource_invalid", "A referenced resource is invalid.")
		return
	}

	c.JSON(201, window)
}

func (h *UnavailabilityHandler) ListByBarber(c *gin.Context) {
	barberID, ok := paramUint(c, "barber_id")
	if !ok {
		return
	}

	q := h.db.Where("barber_id = ?", barberID)
	if from := c.Query("from"); from != "" {
		q = q.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		q = q.Where("date <= ?", to)
	}

	var windows []models.BarberUnavailability
	if err := q.Order("date ASC, start_time ASC").Find(&windows).Error; err != nil {
		httperr.Internal(c, "storage_error", "Could not load unavailability.")
		return
	}
	httpresp.List(c, windows)
}

func (h *UnavailabilityHandler) ListByDate(c *gin.Context) {
	date := c.Param("date")
	if !domain.ValidDate(date) {
		httperr.BadRequest(c, "invalid_date", "Date must be a valid YYYY-MM-DD calendar date.")
		return
	}

	var windows []models.BarberUnavailability
	if err := h.db.Preload("Barber").
		Where("date = ?", date).
		Order("barber_id ASC, start_time ASC").
		Find(&windows).Error; err != nil {
		httperr.Internal(c, "storage_error", "Could not load unavailability.")
		return
	}
	httpresp.List(c, windows)
}

func (h *UnavailabilityHandler) Delete(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	result := h.db.Delete(&models.BarberUnavailability{}, id)
	if result.Error != nil {
		httperr.Internal(c, "storage_error", "Could not delete unavailability.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "unavailability_not_found", "Unavailability window not found.")
		return
	}
	httpresp.OK(c, gin.H{"deleted": id})
}
