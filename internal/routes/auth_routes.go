package routes

import (
	"worktrack-backend/internal/handler"
	"worktrack-backend/internal/middleware"
	"worktrack-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewUserRepository(db)
	hdl := handler.NewAuthHandler(repo)

	api := app.Group("/api/auth")

	api.Post("/login", hdl.Login)

	// Endpoint yang butuh login
	api.Get("/profile", middleware.Auth, hdl.GetProfile)
	api.Put("/profile", middleware.Auth, hdl.UpdateProfile)
	api.Put("/password", middleware.Auth, hdl.ChangePassword)
}
