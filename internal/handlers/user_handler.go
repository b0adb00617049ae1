package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/httpresp"
	"github.com/barberia-app/barberia-api/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

type UpdateUserRequest struct {
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Email  *string `json:"email"`
	RoleID *uint   `json:"role_id"`
}

func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.Preload("Role").Order("created_at DESC").Find(&users).Error; err != nil {
		httperr.Internal(c, "storage_error", "Could not load users.")
		return
	}
	httpresp.List(c, users)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := h.db.Preload("Role").First(&user, id).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}
	httpresp.OK(c, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.RoleID != nil {
		updates["role_id"] = *req.RoleID
	}
	if len(updates) == 0 {
		httperr.BadRequest(c, "empty_update", "No fields to update.")
		return
	}

	result := h.db.Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		httperr.BadRequest(c, "related_resource_invalid", "A referenced resource is invalid.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	var user models.User
	h.db.Preload("Role").First(&user, id)
	httpresp.OK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	result := h.db.Delete(&models.User{}, id)
	if result.Error != nil {
		httperr.Internal(c, "storage_error", "Could not delete user.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}
	httpresp.OK(c, gin.H{"deleted": id})
}
