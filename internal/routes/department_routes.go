package routes

import (
	"worktrack-backend/internal/handler"
	"worktrack-backend/internal/middleware"
	"worktrack-backend/internal/model"
	"worktrack-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDepartmentRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewDepartmentRepository(db)
	hdl := handler.NewDepartmentHandler(repo)

	api := app.Group("/api/departments", middleware.Auth)

	api.Get("/", hdl.GetAll)

	// Mutasi hanya untuk Admin
	adminOnly := middleware.Role(model.RoleAdmin)
	api.Post("/", adminOnly, hdl.Create)
	api.Put("/:id", adminOnly, hdl.Update)
	api.Delete("/:id", adminOnly, hdl.Delete)
}
