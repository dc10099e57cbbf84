package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"nailstudio-backend/config"
	"nailstudio-backend/middleware"
	"nailstudio-backend/models"
	"nailstudio-backend/services"
	"nailstudio-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a customer account. Email must be unused.
func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var existing models.User
	result := config.DB.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	user := models.User{
		Email:    email,
		Password: input.Password, // hashed in BeforeCreate hook
		Name:     input.Name,
		Phone:    input.Phone,
		Role:     models.RoleCustomer,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

// Login checks credentials and issues a signed token.
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"accountId": user.ID,
		"role":      user.Role,
	})
}

// Logout revokes the presented bearer token. Logging out twice with the same
// token succeeds; the second call is a no-op.
func Logout(c *gin.Context) {
	token := c.GetString(middleware.ContextTokenKey)
	if token == "" {
		utils.RespondWithError(c, http.StatusUnauthorized, "Bearer token required")
		return
	}

	_, expiresAt, err := utils.ParseToken(token)
	if err != nil {
		// AuthRequired already vetted the token; treat remaining parse
		// failures as an expiry far enough out to be safe.
		expiresAt = time.Now().Add(24 * time.Hour)
	}

	if err := services.NewTokenBlacklist(config.DB).Revoke(token, expiresAt); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to revoke token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
