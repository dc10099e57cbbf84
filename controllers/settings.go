// controllers/settings.go
package controllers

import (
	"net/http"
	"strconv"

	"nailstudio-backend/config"
	"nailstudio-backend/services"
	"nailstudio-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateHolidayInput struct {
	Date        string `json:"date" binding:"required"`
	Description string `json:"description"`
}

type CreateUnavailableDateInput struct {
	Date   string `json:"date" binding:"required"`
	Reason string `json:"reason"`
}

type CreateTimeSlotInput struct {
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

// GetSettings returns the availability aggregate, seeding the default week
// on first access.
func GetSettings(c *gin.Context) {
	settings, err := services.NewAvailabilityService(config.DB).GetAvailability()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings replaces any of the four collections that appear in the
// payload; omitted collections are untouched.
func UpdateSettings(c *gin.Context) {
	var input services.ReplaceSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	svc := services.NewAvailabilityService(config.DB)
	if err := svc.ReplaceAvailability(input); err != nil {
		respondServiceError(c, err)
		return
	}

	settings, err := svc.GetAvailability()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func CreateHoliday(c *gin.Context) {
	var input CreateHolidayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	holiday, err := services.NewAvailabilityService(config.DB).CreateHoliday(input.Date, input.Description)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, holiday)
}

func DeleteHoliday(c *gin.Context) {
	id, ok := settingsRowID(c)
	if !ok {
		return
	}
	if err := services.NewAvailabilityService(config.DB).DeleteHoliday(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Holiday deleted successfully"})
}

func CreateUnavailableDate(c *gin.Context) {
	var input CreateUnavailableDateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	row, err := services.NewAvailabilityService(config.DB).CreateUnavailableDate(input.Date, input.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func DeleteUnavailableDate(c *gin.Context) {
	id, ok := settingsRowID(c)
	if !ok {
		return
	}
	if err := services.NewAvailabilityService(config.DB).DeleteUnavailableDate(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Unavailable date deleted successfully"})
}

func CreateTimeSlot(c *gin.Context) {
	var input CreateTimeSlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	slot, err := services.NewAvailabilityService(config.DB).CreateTimeSlot(input.StartTime, input.EndTime)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, slot)
}

func DeleteTimeSlot(c *gin.Context) {
	id, ok := settingsRowID(c)
	if !ok {
		return
	}
	if err := services.NewAvailabilityService(config.DB).DeleteTimeSlot(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Time slot deleted successfully"})
}

func settingsRowID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid ID")
		return 0, false
	}
	return uint(id), true
}
