package services

import (
	"fmt"
	"testing"

	"nailstudio-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

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

	return db
}

func createTestService(t *testing.T, db *gorm.DB, name string) *models.Service {
	t.Helper()

	service := &models.Service{
		Name:        name,
		Price:       45,
		MinDuration: 30,
		MaxDuration: 60,
		IsActive:    true,
		Category:    "Manicure",
	}
	require.NoError(t, db.Create(service).Error)
	return service
}

func createTestUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()

	user := &models.User{
		Email:    email,
		Password: "secret123",
		Name:     "Test User",
		Phone:    "+15550000000",
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
