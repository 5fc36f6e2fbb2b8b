package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stylemind-ai/stylemind-backend-go/config"
	"github.com/stylemind-ai/stylemind-backend-go/database"
	customMiddleware "github.com/stylemind-ai/stylemind-backend-go/middleware"
	"github.com/stylemind-ai/stylemind-backend-go/routes"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Initialize Echo
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{config.GetEnv("CLIENT_URL", "http://localhost:4028")},
		AllowCredentials: true,
	}))
	e.Use(customMiddleware.Metrics)

	// Connect to MongoDB
	if err := database.ConnectDB(); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Setup routes
	routes.SetupRoutes(e)

	// Start the server
	port := config.GetEnv("PORT", "5000")
	e.Logger.Fatal(e.Start(":" + port))
}
