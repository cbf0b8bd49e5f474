package routes

import (
	"worktrack-backend/internal/handler"
	"worktrack-backend/internal/middleware"
	"worktrack-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupNotificationRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewNotificationRepository(db)
	hdl := handler.NewNotificationHandler(repo)

	api := app.Group("/api/notifications", middleware.Auth)

	api.Get("/", hdl.List)
	api.Get("/unread-count", hdl.UnreadCount)
	api.Put("/read-all", hdl.MarkAllRead)
	api.Put("/:id/read", hdl.MarkRead)
}
