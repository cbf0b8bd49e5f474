package main

import (
	"fmt"

	"worktrack-backend/config"
	"worktrack-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	config.ConnectDB()

	app := fiber.New()

	// Middleware Global
	app.Use(cors.New())   // Agar API bisa diakses dari frontend di domain/port lain
	app.Use(logger.New()) // Agar log request muncul di terminal

	// Serve Static Files (lampiran progress bisa diunduh via /uploads/...)
	app.Static("/uploads", "./uploads")

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupUserRoutes(app, config.DB)
	routes.SetupDepartmentRoutes(app, config.DB)
	routes.SetupTargetRoutes(app, config.DB)
	routes.SetupLeaveRoutes(app, config.DB)
	routes.SetupNotificationRoutes(app, config.DB)
	routes.SetupLogRoutes(app, config.DB)
	routes.SetupDashboardRoutes(app, config.DB)

	port := config.GetEnv("APP_PORT", "3000")
	fmt.Println("Server siap! Menunggu request di port :" + port)
	app.Listen(":" + port)
}
