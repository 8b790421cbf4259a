package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Omulosi/iReporter/internal/adapters/http/middleware"
	"github.com/Omulosi/iReporter/internal/adapters/http/routes"
	"github.com/Omulosi/iReporter/internal/adapters/persistence/models"
	"github.com/Omulosi/iReporter/internal/adapters/persistence/repositories"
	"github.com/Omulosi/iReporter/internal/config"
	"github.com/Omulosi/iReporter/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "github.com/Omulosi/iReporter/docs" // Swagger docs
)

// @title iReporter API
// @version 2.0
// @description Citizen incident reporting API: red-flags and interventions.

// @license.name MIT

// @BasePath /api/v2

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

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed the initial admin account
	if err := config.SeedAdminUser(db); err != nil {
		log.Printf("⚠️ Warning: Failed to seed admin user: %v", err)
	}

	// Start the blacklist sweep scheduler
	cleanupService := services.NewCleanupService(repositories.NewBlacklistRepository(db))
	cleanupService.Start()
	defer cleanupService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "iReporter API v2.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

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
