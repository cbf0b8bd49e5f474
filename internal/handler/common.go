package handler

import (
	"errors"

	"worktrack-backend/internal/model"
	"worktrack-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// actorFromCtx membangun user ringan dari claims JWT (diset di Auth
// middleware). Cukup untuk dispatch role; data lengkap diambil dari
// repository kalau memang dibutuhkan.
func actorFromCtx(c *fiber.Ctx) *model.User {
	id := uint(c.Locals("user_id").(float64))
	role, _ := c.Locals("role").(string)
	name, _ := c.Locals("name").(string)
	return &model.User{Model: gorm.Model{ID: id}, Role: role, Name: name}
}

// respondError memetakan error domain ke status HTTP. Tidak ada transisi
// yang gagal secara diam-diam: setiap penolakan dapat error yang jelas.
func respondError(c *fiber.Ctx, err error) error {
	var vErr *usecase.ValidationError
	var cErr *usecase.ConflictError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid", "fields": vErr.Fields})
	case errors.As(err, &cErr):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": cErr.Reason})
	case errors.Is(err, usecase.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Anda tidak berhak melakukan aksi ini"})
	case errors.Is(err, usecase.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data tidak ditemukan"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Terjadi kesalahan server"})
	}
}
