package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/httpresp"
	"github.com/barberia-app/barberia-api/internal/models"
)

type ProductHandler struct {
	db *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Category    string  `json:"category"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Active      *bool    `json:"active"`
}

func (h *ProductHandler) List(c *gin.Context) {
	q := h.db.Order("category ASC, name ASC")
	if c.Query("active") == "true" {
		q = q.Where("active = true")
	}
	if cat := c.Query("category"); cat != "" {
		q = q.Where("category = ?", cat)
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		httperr.Internal(c, "storage_error", "Could not load products.")
		return
	}
	httpresp.List(c, products)
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var product models.Product
	if err := h.db.First(&product, id).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Product not found.")
		return
	}
	httpresp.OK(c, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name and price are required.")
		return
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Active:      true,
	}
	if err := h.db.Create(&product).Error; err != nil {
		httperr.Internal(c, "storage_error", "Could not create product.")
		return
	}
	c.JSON(201, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var req UpdateProductRequest
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
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	if len(updates) == 0 {
		httperr.BadRequest(c, "empty_update", "No fields to update.")
		return
	}

	result := h.db.Model(&models.Product{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		httperr.Internal(c, "storage_error", "Could not update product.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "product_not_found", "Product not found.")
		return
	}

	var product models.Product
	h.db.First(&product, id)
	httpresp.OK(c, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	result := h.db.Delete(&models.Product{}, id)
	if result.Error != nil {
		httperr.Internal(c, "storage_error", "Could not delete product.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "product_not_found", "Product not found.")
		return
	}
	httpresp.OK(c, gin.H{"deleted": id})
}
