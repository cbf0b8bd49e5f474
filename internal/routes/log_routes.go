package routes

import (
	"worktrack-backend/internal/handler"
	"worktrack-backend/internal/middleware"
	"worktrack-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLogRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewActivityLogRepository(db)
	hdl := handler.NewActivityLogHandler(repo)

	api := app.Group("/api/logs", middleware.Auth)

	api.Get("/", hdl.List)
}
