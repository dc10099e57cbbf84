package main

import (
	"fmt"
	"os"

	"nailstudio-backend/config"
	"nailstudio-backend/models"
	"nailstudio-backend/routes"
	"nailstudio-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found")
	}
	config.SetupLogger()
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Booking{},
		&models.BusinessHour{},
		&models.Holiday{},
		&models.UnavailableDate{},
		&models.BookableTimeSlot{},
		&models.RevokedToken{},
	)
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	sweeper := services.NewTokenBlacklist(config.DB).StartSweeper()
	defer sweeper.Stop()

	r := routes.SetupRouter()
	printRoutes(r)

	log.Info().Str("port", port).Msg("server starting")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
