package handler

import (
	"worktrack-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type ActivityLogHandler struct {
	repo repository.ActivityLogRepository
}

func NewActivityLogHandler(repo repository.ActivityLogRepository) *ActivityLogHandler {
	return &ActivityLogHandler{repo: repo}
}

// List: laporan audit, dibatasi visibility scope yang sama dengan
// entitas lain (karyawan hanya lihat aksinya sendiri).
func (h *ActivityLogHandler) List(c *fiber.Ctx) error {
	viewer := actorFromCtx(c)

	filter := repository.LogFilter{
		Action:   c.Query("action"),
		Entity:   c.Query("entity"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
		Page:     c.QueryInt("page", 1),
		Limit:    c.QueryInt("limit", 50),
	}

	list, total, err := h.repo.List(viewer, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil activity log"})
	}

	return c.JSON(fiber.Map{
		"data":  list,
		"total": total,
		"page":  filter.Page,
		"limit": filter.Limit,
	})
}
