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

func SetupTargetRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewWorkTargetRepository(db)
	progressRepo := repository.NewWorkProgressRepository(db)
	userRepo := repository.NewUserRepository(db)
	logRepo := repository.NewActivityLogRepository(db)
	notifService := notifier.New(db, notifier.NewMailerFromEnv())

	uc := usecase.NewTargetUsecase(repo, userRepo, logRepo, notifService)
	hdl := handler.NewWorkTargetHandler(uc, repo, progressRepo)

	api := app.Group("/api/targets", middleware.Auth)

	api.Get("/", hdl.List)
	api.Get("/:id", hdl.GetOne)
	api.Get("/:id/progress", hdl.ListProgress)
	api.Post("/:id/progress", hdl.SubmitProgress)

	// Pembuatan dan penghapusan target bukan untuk karyawan
	api.Post("/", middleware.Role(model.RoleManager, model.RoleAdmin, model.RoleCeo), hdl.Create)
	api.Delete("/:id", middleware.Role(model.RoleManager, model.RoleAdmin, model.RoleCeo), hdl.Delete)
}
