package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"amps-backend/internal/adapters/http/middleware"
	"amps-backend/internal/adapters/http/routes"
	"amps-backend/internal/config"

	"github.com/gofiber/fiber/v2"
)

// @title AMPS API
// @version 1.0
// @description School sports & activity management API

// @contact.name API Support
// @contact.email support@amps.school.example

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Open blob store (file, redis or mysql)
	store, err := config.OpenBlobStore(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to open storage: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("⚠️ Error closing storage: %v", err)
		}
	}()

	// Build the seed dataset used for never-persisted collections
	seed, err := config.BuildSeedData(cfg.BcryptCost)
	if err != nil {
		log.Fatalf("❌ Failed to build seed data: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AMPS API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes and wire the service layer
	svc := routes.Setup(app, store, seed, cfg)

	// Start daily schedule reminders (06:30)
	svc.Reminder.Start()
	defer svc.Reminder.Stop()

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
