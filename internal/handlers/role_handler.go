package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/httpresp"
	"github.com/barberia-app/barberia-api/internal/models"
)

type RoleHandler struct {
	db *gorm.DB
}

func NewRoleHandler(db *gorm.DB) *RoleHandler {
	return &RoleHandler{db: db}
}

func (h *RoleHandler) List(c *gin.Context) {
	var roles []models.Role
	if err := h.db.Order("id ASC").Find(&roles).Error; err != nil {
		httperr.Internal(c, "storage_error", "Could not load roles.")
		return
	}
	httpresp.List(c, roles)
}

func (h *RoleHandler) GetByID(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var role models.Role
	if err := h.db.First(&role, id).Error; err != nil {
		httperr.NotFound(c, "role_not_found", "Role not found.")
		return
	}
	httpresp.OK(c, role)
}
