package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/barberia-app/barberia-api/internal/config"
	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/models"
	"github.com/barberia-app/barberia-api/internal/validators"
)

type AuthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required,min=6"`
	RoleID   uint   `json:"role_id"`
}

type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name, phone and password are required.")
		return
	}

	if req.Email != "" && !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "invalid_email", "Email domain does not resolve.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "hash_failed", "Could not process password.")
		return
	}

	roleID := req.RoleID
	if roleID == 0 {
		var role models.Role
		if err := h.db.Where("name = ?", "client").First(&role).Error; err == nil {
			roleID = role.ID
		}
	}

	user := models.User{
		RoleID:       roleID,
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.BadRequest(c, "phone_taken", "Phone number is already registered.")
		return
	}

	c.JSON(201, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Phone and password are required.")
		return
	}

	var user models.User
	if err := h.db.Preload("Role").Where("phone = ?", req.Phone).First(&user).Error; err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid phone or password.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid phone or password.")
		return
	}

	claims := jwt.MapClaims{
		"sub":  float64(user.ID),
		"role": user.Role.Name,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		httperr.Internal(c, "token_failed", "Could not issue token.")
		return
	}

	c.JSON(200, gin.H{
		"token": signed,
		"user":  user,
	})
}
