package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/httpresp"
	"github.com/barberia-app/barberia-api/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	DurationMin int     `json:"duration_min"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	DurationMin *int     `json:"duration_min"`
	Active      *bool    `json:"active"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	q := h.db.Order("name ASC")
	if c.Query("active") == "true" {
		q = q.Where("active = true")
	}

	var services []models.Service
	if err := q.Find(&services).Error; err != nil {
		httperr.Internal(c, "storage_error", "Could not load services.")
		return
	}
	httpresp.List(c, services)
}

func (h *ServiceHandler) GetByID(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}
	httpresp.OK(c, service)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name and price are required.")
		return
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		Active:      true,
	}
	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "storage_error", "Could not create service.")
		return
	}
	c.JSON(201, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.DurationMin != nil {
		updates["duration_min"] = *req.DurationMin
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	if len(updates) == 0 {
		httperr.BadRequest(c, "empty_update", "No fields to update.")
		return
	}

	result := h.db.Model(&models.Service{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		httperr.Internal(c, "storage_error", "Could not update service.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	var service models.Service
	h.db.First(&service, id)
	httpresp.OK(c, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	result := h.db.Delete(&models.Service{}, id)
	if result.Error != nil {
		httperr.Internal(c, "storage_error", "Could not delete service.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}
	httpresp.OK(c, gin.H{"deleted": id})
}
