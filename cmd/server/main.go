package main

import (
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/soyeon-dev/sns-backend/internal/router"
	"github.com/soyeon-dev/sns-backend/pkg/config"
	"github.com/soyeon-dev/sns-backend/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB(cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer config.CloseDB(db)

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db, cfg)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
