package routes

import (
	"worktrack-backend/internal/handler"
	"worktrack-backend/internal/middleware"
	"worktrack-backend/internal/model"
	"worktrack-backend/internal/notifier"
	"worktrack-backend/internal/repository"
	"worktrack-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLeaveRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewLeaveRepository(db)
	userRepo := repository.NewUserRepository(db)
	logRepo := repository.NewActivityLogRepository(db)
	notifService := notifier.New(db, notifier.NewMailerFromEnv())

	uc := usecase.NewLeaveUsecase(repo, userRepo, logRepo, notifService)
	hdl := handler.NewLeaveHandler(uc, repo)

	api := app.Group("/api/leaves", middleware.Auth)

	api.Get("/", hdl.List)
	api.Post("/", hdl.Request)
	api.Get("/:id", hdl.GetOne)
	api.Post("/:id/cancel", hdl.Cancel)

	// Approval hanya untuk Atasan
	api.Post("/:id/approve", middleware.Role(model.RoleManager, model.RoleAdmin, model.RoleCeo), hdl.Approve)
	api.Post("/:id/reject", middleware.Role(model.RoleManager, model.RoleAdmin, model.RoleCeo), hdl.Reject)
}
