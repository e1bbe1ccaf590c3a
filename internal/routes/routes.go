// Package routes wires repositories, services and handlers and declares
// the HTTP surface with its per-route capability requirements.
package routes

import (
	"credvia/internal/handlers"
	"credvia/internal/middleware"
	"credvia/internal/repositories"
	"credvia/internal/services/auth"
	"credvia/internal/services/document"
	"credvia/internal/services/notification"
	"credvia/internal/services/payment"
	"credvia/internal/services/user"
	"credvia/internal/services/workflow"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes builds the dependency graph and registers all routes.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Repositories.
	userRepo := repositories.NewUserRepository(db, repositories.CacheService)
	appRepo := repositories.NewApplicationRepository(db, repositories.CacheService)
	docRepo := repositories.NewDocumentRepository(db)
	payRepo := repositories.NewPaymentRepository(db)
	notifRepo := repositories.NewNotificationRepository(db)
	healthRepo := repositories.NewHealthRepository(db)

	// Services.
	notifService := notification.NewService(notifRepo)
	authService := auth.NewService(userRepo)
	userService := user.NewService(userRepo)
	workflowService := workflow.NewService(appRepo, notifService)
	documentService := document.NewService(docRepo, appRepo, notifService, document.Config{})
	paymentService := payment.NewService(payRepo)

	// Handlers.
	authHandler := handlers.NewAuthHandler(authService, userService)
	appHandler := handlers.NewApplicationHandler(workflowService)
	docHandler := handlers.NewDocumentHandler(documentService)
	adminHandler := handlers.NewAdminHandler(userService, workflowService, notifService, paymentService)
	healthHandler := handlers.NewHealthHandler(healthRepo)

	// Public surface.
	app.Get("/health", healthHandler.Check)

	api := app.Group("/api")
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/refresh", authHandler.Refresh)

	// Authenticated surface.
	authMiddleware := middleware.NewAuthMiddleware(authService)
	protected := api.Group("/", authMiddleware.Handler)

	protected.Post("/auth/logout", authHandler.Logout)

	applications := protected.Group("/applications")
	applications.Post("/", appHandler.Create)
	applications.Get("/", appHandler.List)
	applications.Get("/:id", appHandler.Get)
	applications.Put("/:id", appHandler.Update)
	applications.Put("/:id/status", appHandler.UpdateStatus)

	documents := protected.Group("/documents")
	documents.Post("/", docHandler.Attach)
	documents.Get("/", docHandler.List)
	documents.Put("/:id/review",
		middleware.RequireRoles(middleware.ReviewerRoles...), docHandler.Review)

	// Reviewer and admin surface.
	admin := protected.Group("/admin")
	admin.Get("/stats",
		middleware.RequireRoles(middleware.ReviewerRoles...), adminHandler.Stats)
	admin.Get("/applications",
		middleware.RequireRoles(middleware.ReviewerRoles...), adminHandler.ListApplications)
	admin.Put("/applications/:id/steps/:stepOrder/advance",
		middleware.RequireRoles(middleware.ReviewerRoles...), adminHandler.AdvanceStep)
	admin.Get("/users",
		middleware.RequireRoles(middleware.AdminRoles...), adminHandler.ListUsers)
	admin.Put("/users/:id/status",
		middleware.RequireRoles(middleware.AdminRoles...), adminHandler.UpdateUserStatus)
	admin.Put("/payments/:id/status",
		middleware.RequireRoles(middleware.AdminRoles...), adminHandler.UpdatePaymentStatus)
}
