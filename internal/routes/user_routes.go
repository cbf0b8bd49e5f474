package routes

import (
	"worktrack-backend/internal/handler"
	"worktrack-backend/internal/middleware"
	"worktrack-backend/internal/model"
	"worktrack-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewUserRepository(db)
	hdl := handler.NewUserHandler(repo)

	api := app.Group("/api/users", middleware.Auth)

	// Endpoint untuk Manager
	api.Get("/subordinates", middleware.Role(model.RoleManager, model.RoleAdmin, model.RoleCeo), hdl.GetSubordinates)

	// Administrasi pegawai hanya untuk Admin
	adminOnly := middleware.Role(model.RoleAdmin)
	api.Get("/", adminOnly, hdl.GetAll)
	api.Post("/", adminOnly, hdl.Create)
	api.Get("/:id", adminOnly, hdl.GetByID)
	api.Put("/:id", adminOnly, hdl.Update)
	api.Delete("/:id", adminOnly, hdl.Delete)
}
