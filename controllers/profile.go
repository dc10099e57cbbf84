package controllers

import (
	"net/http"

	"nailstudio-backend/config"
	"nailstudio-backend/middleware"
	"nailstudio-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateProfileInput struct {
	Name                      *string `json:"name"`
	Phone                     *string `json:"phone"`
	AvatarURL                 *string `json:"avatarUrl"`
	EmailNotificationsEnabled *bool   `json:"emailNotificationsEnabled"`
	SMSNotificationsEnabled   *bool   `json:"smsNotificationsEnabled"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// GetMe returns the authenticated account's profile
func GetMe(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateMe applies a partial profile update
func UpdateMe(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.AvatarURL != nil {
		user.AvatarURL = *input.AvatarURL
	}
	if input.EmailNotificationsEnabled != nil {
		user.EmailNotificationsEnabled = *input.EmailNotificationsEnabled
	}
	if input.SMSNotificationsEnabled != nil {
		user.SMSNotificationsEnabled = *input.SMSNotificationsEnabled
	}

	if err := config.DB.Save(user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, user)
}

// ChangePassword verifies the current password before setting a new one
func ChangePassword(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var input ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.CheckPasswordHash(input.CurrentPassword, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Current password is incorrect")
		return
	}

	hashed, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update password")
		return
	}

	if err := config.DB.Model(user).Update("password", hashed).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update password")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}
