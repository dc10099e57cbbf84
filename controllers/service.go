// controllers/service.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"nailstudio-backend/config"
	"nailstudio-backend/models"
	"nailstudio-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,min=0"`
	MinDuration int     `json:"minDuration" binding:"required,min=1"` // in minutes
	MaxDuration int     `json:"maxDuration" binding:"required,min=1"` // in minutes
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	MinDuration *int     `json:"minDuration"`
	MaxDuration *int     `json:"maxDuration"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"imageUrl"`
	IsActive    *bool    `json:"isActive"`
}

// BulkServiceActionInput selects services and the action to apply to them.
type BulkServiceActionInput struct {
	Action string `json:"action" binding:"required,oneof=activate deactivate delete"`
	IDs    []uint `json:"ids" binding:"required,min=1"`
}

// CreateService creates a new catalog service
func CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.MaxDuration < input.MinDuration {
		utils.RespondWithError(c, http.StatusBadRequest, "maxDuration must be >= minDuration")
		return
	}

	var existing models.Service
	if err := config.DB.Where("name = ?", input.Name).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Service name already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	service := models.Service{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		MinDuration: input.MinDuration,
		MaxDuration: input.MaxDuration,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		IsActive:    true,
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// GetServices retrieves the catalog; ?active=true narrows to bookable ones
func GetServices(c *gin.Context) {
	query := config.DB.Order("name")
	if c.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}

	var catalog []models.Service
	if err := query.Find(&catalog).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, catalog)
}

// GetService retrieves a specific service by ID
func GetService(c *gin.Context) {
	service, ok := findService(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, service)
}

// UpdateService updates an existing service; PUT and PATCH share the
// pointer-field semantics, absent fields are left alone
func UpdateService(c *gin.Context) {
	service, ok := findService(c)
	if !ok {
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Update fields if provided
	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.Price != nil {
		service.Price = *input.Price
	}
	if input.MinDuration != nil {
		service.MinDuration = *input.MinDuration
	}
	if input.MaxDuration != nil {
		service.MaxDuration = *input.MaxDuration
	}
	if input.Category != nil {
		service.Category = *input.Category
	}
	if input.ImageURL != nil {
		service.ImageURL = *input.ImageURL
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if service.MaxDuration < service.MinDuration {
		utils.RespondWithError(c, http.StatusBadRequest, "maxDuration must be >= minDuration")
		return
	}

	if err := config.DB.Save(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService removes a service
func DeleteService(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	result := config.DB.Delete(&models.Service{}, uint(id))
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}

// BulkServiceAction activates, deactivates or deletes a set of services in
// one transaction; either every row is touched or none.
func BulkServiceAction(c *gin.Context) {
	var input BulkServiceActionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var affected int64
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&models.Service{}).Where("id IN ?", input.IDs)
		var result *gorm.DB
		switch input.Action {
		case "activate":
			result = query.Update("is_active", true)
		case "deactivate":
			result = query.Update("is_active", false)
		case "delete":
			result = tx.Where("id IN ?", input.IDs).Delete(&models.Service{})
		}
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Bulk action failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Bulk action applied",
		"action":   input.Action,
		"affected": affected,
	})
}

func findService(c *gin.Context) (*models.Service, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID")
		return nil, false
	}

	var service models.Service
	if err := config.DB.First(&service, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}

	return &service, true
}
