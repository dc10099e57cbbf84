package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"nailstudio-backend/config"
	"nailstudio-backend/middleware"
	"nailstudio-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTest swaps config.DB for a fresh in-memory database and returns a
// router wired like routes.SetupRouter (built here to avoid the import
// cycle with the routes package).
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "controller-test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Booking{},
		&models.BusinessHour{},
		&models.Holiday{},
		&models.UnavailableDate{},
		&models.BookableTimeSlot{},
		&models.RevokedToken{},
	))
	config.DB = db

	r := gin.New()

	r.POST("/auth/register", Register)
	r.POST("/auth/login", Login)
	r.POST("/auth/logout", middleware.AuthRequired(), Logout)

	r.GET("/services", GetServices)
	r.POST("/services", middleware.AdminRequired(), CreateService)
	r.POST("/services/bulk-action", middleware.AdminRequired(), BulkServiceAction)

	r.POST("/bookings", middleware.OptionalAuth(), CreateBooking)
	r.GET("/bookings/my", middleware.AuthRequired(), GetMyBookings)
	r.GET("/bookings", middleware.AdminRequired(), GetAllBookings)
	r.PUT("/bookings/:id", middleware.AuthRequired(), UpdateBooking)
	r.PUT("/bookings/:id/status", middleware.AdminRequired(), UpdateBookingStatus)
	r.DELETE("/bookings/:id", middleware.AuthRequired(), DeleteBooking)

	r.GET("/admin/settings", middleware.AdminRequired(), GetSettings)
	r.PUT("/admin/settings", middleware.AdminRequired(), UpdateSettings)
	r.POST("/admin/settings/holidays", middleware.AdminRequired(), CreateHoliday)
	r.DELETE("/admin/settings/holidays/:id", middleware.AdminRequired(), DeleteHoliday)

	r.GET("/users/me", middleware.AuthRequired(), GetMe)
	r.PUT("/users/me", middleware.AuthRequired(), UpdateMe)
	r.POST("/users/me/change-password", middleware.AuthRequired(), ChangePassword)

	return r
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	out := []map[string]any{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// jsonNumber renders an id decoded from JSON (float64) back to its path form.
func jsonNumber(v any) string {
	f, _ := v.(float64)
	return strconv.FormatUint(uint64(f), 10)
}

func registerAndLogin(t *testing.T, r *gin.Engine, email, role string) string {
	t.Helper()

	w := doJSON(r, http.MethodPost, "/auth/register", "", gin.H{
		"email":    email,
		"password": "secret123",
		"name":     "Test User",
		"phone":    "+15550000000",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	if role == models.RoleAdmin {
		require.NoError(t, config.DB.Model(&models.User{}).
			Where("email = ?", email).Update("role", models.RoleAdmin).Error)
	}

	w = doJSON(r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	token, _ := decodeBody(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func seedService(t *testing.T, name string) *models.Service {
	t.Helper()
	service := &models.Service{
		Name:        name,
		Price:       45,
		MinDuration: 30,
		MaxDuration: 60,
		IsActive:    true,
	}
	require.NoError(t, config.DB.Create(service).Error)
	return service
}
