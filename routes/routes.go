package routes

import (
	"net/http"

	"nailstudio-backend/controllers"
	"nailstudio-backend/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-Id"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
		AllowCredentials: true,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Nail studio booking API"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/logout", middleware.AuthRequired(), controllers.Logout)
	}

	catalog := r.Group("/services")
	{
		catalog.GET("", controllers.GetServices)
		catalog.GET("/:id", controllers.GetService)

		catalog.POST("", middleware.AdminRequired(), controllers.CreateService)
		catalog.PUT("/:id", middleware.AdminRequired(), controllers.UpdateService)
		catalog.PATCH("/:id", middleware.AdminRequired(), controllers.UpdateService)
		catalog.DELETE("/:id", middleware.AdminRequired(), controllers.DeleteService)
		catalog.POST("/bulk-action", middleware.AdminRequired(), controllers.BulkServiceAction)
	}

	bookings := r.Group("/bookings")
	{
		// Guests and account holders both book here
		bookings.POST("", middleware.OptionalAuth(), controllers.CreateBooking)

		bookings.GET("/my", middleware.AuthRequired(), controllers.GetMyBookings)
		bookings.GET("", middleware.AdminRequired(), controllers.GetAllBookings)

		bookings.PUT("/:id", middleware.AuthRequired(), controllers.UpdateBooking)
		bookings.PUT("/:id/status", middleware.AdminRequired(), controllers.UpdateBookingStatus)
		bookings.DELETE("/:id", middleware.AuthRequired(), controllers.DeleteBooking)
	}

	r.GET("/admin/dashboard", middleware.AdminRequired(), controllers.GetDashboardOverview)

	settings := r.Group("/admin/settings")
	settings.Use(middleware.AdminRequired())
	{
		settings.GET("", controllers.GetSettings)
		settings.PUT("", controllers.UpdateSettings)

		settings.POST("/holidays", controllers.CreateHoliday)
		settings.DELETE("/holidays/:id", controllers.DeleteHoliday)

		settings.POST("/unavailable-dates", controllers.CreateUnavailableDate)
		settings.DELETE("/unavailable-dates/:id", controllers.DeleteUnavailableDate)

		settings.POST("/time-slots", controllers.CreateTimeSlot)
		settings.DELETE("/time-slots/:id", controllers.DeleteTimeSlot)
	}

	users := r.Group("/users")
	users.Use(middleware.AuthRequired())
	{
		users.GET("/me", controllers.GetMe)
		users.PUT("/me", controllers.UpdateMe)
		users.POST("/me/change-password", controllers.ChangePassword)
	}

	return r
}
