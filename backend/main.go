package main

import (
	"log"

	"project/backend/auth"
	"project/backend/config"
	"project/backend/middleware"
	"project/backend/routes"
	"project/backend/session"
	"project/backend/store"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Seed the in-memory content store. Nothing persists across
	// restarts; every run starts from the same initial content.
	st := store.New()
	sess := session.New(st, auth.NewSharedSecret(cfg.AdminPassword))

	// Initialize logger
	logger := utils.InitLogger()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, st, sess, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
