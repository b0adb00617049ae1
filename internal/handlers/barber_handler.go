package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/httpresp"
	"github.com/barberia-app/barberia-api/internal/models"
)

type BarberHandler struct {
	db *gorm.DB
}

func NewBarberHandler(db *gorm.DB) *BarberHandler {
	return &BarberHandler{db: db}
}

type CreateBarberRequest struct {
	UserID    *uint  `json:"user_id"`
	StageName string `json:"stage_name" binding:"required"`
	Specialty string `json:"specialty"`
}

type UpdateBarberRequest struct {
	StageName *string `json:"stage_name"`
	Specialty *string `json:"specialty"`
	Available *bool   `json:"available"`
}

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Preload("User").Order("id ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "storage_error", "Could not load barbers.")
		return
	}
	httpresp.List(c, barbers)
}

func (h *BarberHandler) ListAvailable(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Preload("User").
		Where("available = true").
		Order("stage_name ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "storage_error", "Could not load barbers.")
		return
	}
	httpresp.List(c, barbers)
}

func (h *BarberHandler) GetByID(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var barber models.Barber
	if err := h.db.Preload("User").First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}
	httpresp.OK(c, barber)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Stage name is required.")
		return
	}

	barber := models.Barber{
		UserID:    req.UserID,
		StageName: req.StageName,
		Specialty: req.Specialty,
		Available: true,
	}
	if err := h.db.Create(&barber).Error; err != nil {
		httperr.BadRequest(c, "related_resource_invalid", "A referenced resource is invalid.")
		return
	}
	c.JSON(201, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	updates := map[string]any{}
	if req.StageName != nil {
		updates["stage_name"] = *req.StageName
	}
	if req.Specialty != nil {
		updates["specialty"] = *req.Specialty
	}
	if req.Available != nil {
		updates["available"] = *req.Available
	}
	if len(updates) == 0 {
		httperr.BadRequest(c, "empty_update", "No fields to update.")
		return
	}

	result := h.db.Model(&models.Barber{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		httperr.Internal(c, "storage_error", "Could not update barber.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	var barber models.Barber
	h.db.First(&barber, id)
	httpresp.OK(c, barber)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	result := h.db.Delete(&models.Barber{}, id)
	if result.Error != nil {
		httperr.Internal(c, "storage_error", "Could not delete barber.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}
	httpresp.OK(c, gin.H{"deleted": id})
}
