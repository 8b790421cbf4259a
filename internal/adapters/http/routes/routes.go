package routes

import (
	"github.com/Omulosi/iReporter/internal/adapters/http/handlers"
	"github.com/Omulosi/iReporter/internal/adapters/http/middleware"
	"github.com/Omulosi/iReporter/internal/adapters/persistence/repositories"
	"github.com/Omulosi/iReporter/internal/config"
	"github.com/Omulosi/iReporter/internal/core/services"
	"github.com/Omulosi/iReporter/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	incidentRepo := repositories.NewIncidentRepository(db)
	blacklistRepo := repositories.NewBlacklistRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, blacklistRepo, cfg)
	userService := services.NewUserService(userRepo)
	notifyService := services.NewNotificationService(cfg)
	incidentService := services.NewIncidentService(incidentRepo, userRepo, notifyService)

	// Handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	incidentHandler := handlers.NewIncidentHandler(incidentService)

	// Authorization guard
	guard := middleware.NewGuard(cfg, userRepo, blacklistRepo)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api/v2")
	setupAuthRoutes(api.Group("/auth"), authHandler, guard)
	setupUserRoutes(api, userHandler, incidentHandler, guard)
	setupIncidentRoutes(api, incidentHandler, incidentRepo, guard, cfg)
}

// setupAuthRoutes configures authentication routes. Signup and login are
// public (strictly rate-limited); the rest are gated by token family.
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, guard *middleware.Guard) {
	router.Post("/signup", middleware.AuthRateLimiter(), handler.SignUp)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)

	router.Post("/refresh", guard.Protect(middleware.Policy{
		TokenType: jwt.TokenTypeRefresh,
	}), handler.Refresh)

	router.Delete("/logout", guard.Protect(middleware.Policy{
		TokenType: jwt.TokenTypeAccess,
	}), handler.Logout)

	router.Delete("/refresh/logout", guard.Protect(middleware.Policy{
		TokenType: jwt.TokenTypeRefresh,
	}), handler.Logout)
}

// setupUserRoutes configures user profile and listing routes
func setupUserRoutes(router fiber.Router, userHandler *handlers.UserHandler, incidentHandler *handlers.IncidentHandler, guard *middleware.Guard) {
	router.Get("/user", guard.Protect(middleware.Policy{
		TokenType: jwt.TokenTypeAccess,
	}), userHandler.Me)

	router.Get("/users", guard.Protect(middleware.Policy{
		TokenType: jwt.TokenTypeAccess,
		Require:   middleware.AdminOnly(),
	}), userHandler.List)

	router.Get("/users/:id/:incident_type", middleware.ValidateIncidentType(), guard.Protect(middleware.Policy{
		TokenType: jwt.TokenTypeAccess,
	}), incidentHandler.ListByOwner)
}

// setupIncidentRoutes configures incident record routes. Mutations require
// fresh access tokens unless relaxed by configuration; ownership and role
// predicates run inside the guard.
func setupIncidentRoutes(router fiber.Router, handler *handlers.IncidentHandler, incidentRepo repositories.IncidentRepository, guard *middleware.Guard, cfg *config.Config) {
	requireFresh := cfg.JWT.RequireFreshMutations

	incidents := router.Group("/:incident_type", middleware.ValidateIncidentType())

	incidents.Get("/", guard.Protect(middleware.Policy{
		TokenType: jwt.TokenTypeAccess,
	}), handler.List)

	incidents.Post("/", guard.Protect(middleware.Policy{
		TokenType:    jwt.TokenTypeAccess,
		RequireFresh: requireFresh,
	}), handler.Create)

	incidents.Get("/:id", guard.Protect(middleware.Policy{
		TokenType: jwt.TokenTypeAccess,
	}), handler.Get)

	incidents.Delete("/:id", guard.Protect(middleware.Policy{
		TokenType:    jwt.TokenTypeAccess,
		RequireFresh: requireFresh,
		Require:      middleware.RecordOwner(incidentRepo),
	}), handler.Delete)

	incidents.Patch("/:id/:field", guard.Protect(middleware.Policy{
		TokenType:    jwt.TokenTypeAccess,
		RequireFresh: requireFresh,
		Require:      middleware.RecordFieldPolicy(incidentRepo),
	}), handler.UpdateField)
}
