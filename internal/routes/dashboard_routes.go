package routes

import (
	"worktrack-backend/internal/handler"
	"worktrack-backend/internal/middleware"
	"worktrack-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	targetRepo := repository.NewWorkTargetRepository(db)
	leaveRepo := repository.NewLeaveRepository(db)
	userRepo := repository.NewUserRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	hdl := handler.NewDashboardHandler(targetRepo, leaveRepo, userRepo, notifRepo)

	api := app.Group("/api/dashboard", middleware.Auth)

	api.Get("/", hdl.GetStats)
}
