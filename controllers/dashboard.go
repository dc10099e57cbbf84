package controllers

import (
	"fmt"
	"net/http"
	"time"

	"nailstudio-backend/config"
	"nailstudio-backend/models"
	"nailstudio-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardOverview struct {
	TotalCustomers  int64            `json:"totalCustomers"`
	TotalBookings   int64            `json:"totalBookings"`
	PendingBookings int64            `json:"pendingBookings"`
	BookingsToday   int64            `json:"bookingsToday"`
	ActiveServices  int64            `json:"activeServices"`
	RecentBookings  []RecentBooking  `json:"recentBookings"`
	UpcomingClosure *UpcomingClosure `json:"upcomingClosure"`
}

type RecentBooking struct {
	Reference  string `json:"reference"`
	ClientName string `json:"clientName"`
	Service    string `json:"service"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	CreatedAgo string `json:"createdAgo"` // e.g. "Today", "Yesterday", "3 days ago"
}

type UpcomingClosure struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// GetDashboardOverview aggregates booking and catalog counts for the admin
// landing page.
func GetDashboardOverview(c *gin.Context) {
	overview := DashboardOverview{}
	today := time.Now().Format(utils.DateLayout)

	config.DB.Model(&models.User{}).Where("role = ?", models.RoleCustomer).Count(&overview.TotalCustomers)
	config.DB.Model(&models.Booking{}).Count(&overview.TotalBookings)
	config.DB.Model(&models.Booking{}).Where("status = ?", models.BookingStatusPending).Count(&overview.PendingBookings)
	config.DB.Model(&models.Booking{}).Where("date = ?", today).Count(&overview.BookingsToday)
	config.DB.Model(&models.Service{}).Where("is_active = ?", true).Count(&overview.ActiveServices)

	// Last 5 bookings with joined display names
	var recent []models.Booking
	if err := config.DB.Order("created_at DESC").Limit(5).Find(&recent).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}
	for i := range recent {
		b := &recent[i]
		clientName := b.GuestName
		if b.UserID != nil {
			var user models.User
			if err := config.DB.First(&user, *b.UserID).Error; err == nil {
				clientName = user.Name
			}
		}
		var service models.Service
		serviceName := ""
		if err := config.DB.First(&service, b.ServiceID).Error; err == nil {
			serviceName = service.Name
		}
		overview.RecentBookings = append(overview.RecentBookings, RecentBooking{
			Reference:  b.ReferenceCode,
			ClientName: clientName,
			Service:    serviceName,
			Date:       b.Date,
			Status:     b.Status,
			CreatedAgo: relativeDay(b.CreatedAt),
		})
	}

	// Next configured closure, holiday or ad-hoc
	var holiday models.Holiday
	if err := config.DB.Where("date >= ?", today).Order("date").First(&holiday).Error; err == nil {
		overview.UpcomingClosure = &UpcomingClosure{Date: holiday.Date, Reason: holiday.Description}
	}
	var blackout models.UnavailableDate
	if err := config.DB.Where("date >= ?", today).Order("date").First(&blackout).Error; err == nil {
		if overview.UpcomingClosure == nil || blackout.Date < overview.UpcomingClosure.Date {
			overview.UpcomingClosure = &UpcomingClosure{Date: blackout.Date, Reason: blackout.Reason}
		}
	}

	c.JSON(http.StatusOK, overview)
}

func relativeDay(t time.Time) string {
	days := utils.DaysBetween(t, time.Now())
	switch days {
	case 0:
		return "Today"
	case 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
