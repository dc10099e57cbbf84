// controllers/booking.go
package controllers

import (
	"net/http"
	"strconv"

	"nailstudio-backend/config"
	"nailstudio-backend/middleware"
	"nailstudio-backend/models"
	"nailstudio-backend/services"
	"nailstudio-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateBookingStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// CreateBooking accepts both guest and authenticated bookings. With a
// user_id in the payload the caller must be that account or an admin;
// without one, full guest contact details are required.
func CreateBooking(c *gin.Context) {
	var input services.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	actor := middleware.CurrentUser(c)
	resp, err := services.NewBookingService(config.DB).Create(input, actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetMyBookings lists the authenticated account's bookings
func GetMyBookings(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var bookings []models.Booking
	if err := config.DB.Where("user_id = ?", actor.ID).
		Order("date, time").Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	out, err := services.NewBookingService(config.DB).ProjectAll(bookings)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, out)
}

// GetAllBookings lists every booking; admin only, optional ?status= filter
func GetAllBookings(c *gin.Context) {
	query := config.DB.Order("date, time")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	out, err := services.NewBookingService(config.DB).ProjectAll(bookings)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, out)
}

// UpdateBooking applies a partial update; non-admins may only edit notes on
// their own bookings
func UpdateBooking(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var input services.UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	actor := middleware.CurrentUser(c)
	if actor == nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	resp, err := services.NewBookingService(config.DB).Update(id, input, actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateBookingStatus moves a booking through the status state machine;
// admin only
func UpdateBookingStatus(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var input UpdateBookingStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	resp, err := services.NewBookingService(config.DB).UpdateStatus(id, input.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteBooking removes a booking; owners their own, admins any
func DeleteBooking(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	actor := middleware.CurrentUser(c)
	if actor == nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	if err := services.NewBookingService(config.DB).Delete(id, actor); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

func bookingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID")
		return 0, false
	}
	return uint(id), true
}
