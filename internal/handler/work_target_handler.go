package handler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"worktrack-backend/internal/repository"
	"worktrack-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkTargetHandler struct {
	uc           *usecase.TargetUsecase
	repo         repository.WorkTargetRepository
	progressRepo repository.WorkProgressRepository
}

func NewWorkTargetHandler(uc *usecase.TargetUsecase, repo repository.WorkTargetRepository, progressRepo repository.WorkProgressRepository) *WorkTargetHandler {
	return &WorkTargetHandler{uc: uc, repo: repo, progressRepo: progressRepo}
}

func (h *WorkTargetHandler) List(c *fiber.Ctx) error {
	viewer := actorFromCtx(c)

	// Refresh status overdue dulu supaya listing selalu konsisten
	// dengan deadline yang sudah lewat.
	today := time.Now().Format("2006-01-02")
	if err := h.repo.MarkOverdue(today); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memperbarui status target"})
	}

	filter := repository.TargetFilter{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Search:   c.Query("search"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
		Page:     c.QueryInt("page", 1),
		Limit:    c.QueryInt("limit", 20),
	}

	list, total, err := h.repo.List(viewer, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data target"})
	}

	return c.JSON(fiber.Map{
		"data":  list,
		"total": total,
		"page":  filter.Page,
		"limit": filter.Limit,
	})
}

// GetOne: target di luar scope viewer diperlakukan tidak ada (404),
// bukan 403, agar id milik orang lain tidak bisa ditebak-tebak.
func (h *WorkTargetHandler) GetOne(c *fiber.Ctx) error {
	viewer := actorFromCtx(c)
	id, _ := strconv.Atoi(c.Params("id"))

	target, err := h.repo.GetVisibleByID(viewer, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Target tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data target"})
	}

	// Persentase saat ini = entri progress terbaru.
	current := 0
	if latest, err := h.progressRepo.Latest(target.ID); err == nil {
		current = latest.Percentage
	}

	return c.JSON(fiber.Map{
		"data":               target,
		"current_percentage": current,
	})
}

func (h *WorkTargetHandler) Create(c *fiber.Ctx) error {
	actor := actorFromCtx(c)

	var req usecase.CreateTargetInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	target, err := h.uc.Create(actor, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Target berhasil dibuat",
		"data":    target,
	})
}

func (h *WorkTargetHandler) Delete(c *fiber.Ctx) error {
	actor := actorFromCtx(c)
	id, _ := strconv.Atoi(c.Params("id"))

	if err := h.uc.Delete(actor, uint(id)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Target berhasil dihapus"})
}

// ListProgress: sub-resource. Parent dimuat dulu; kalau parent ada tapi
// di luar scope viewer, hasilnya 403 (beda kebijakan dengan GetOne).
func (h *WorkTargetHandler) ListProgress(c *fiber.Ctx) error {
	viewer := actorFromCtx(c)
	id, _ := strconv.Atoi(c.Params("id"))

	if _, err := h.repo.GetByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Target tidak ditemukan"})
	}
	if _, err := h.repo.GetVisibleByID(viewer, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Anda tidak berhak melihat progress target ini"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data"})
	}

	list, err := h.progressRepo.GetByTargetID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data progress"})
	}

	return c.JSON(fiber.Map{"data": list})
}

func (h *WorkTargetHandler) SubmitProgress(c *fiber.Ctx) error {
	actor := actorFromCtx(c)
	id, _ := strconv.Atoi(c.Params("id"))

	percentage, err := strconv.Atoi(c.FormValue("percentage"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Persentase wajib diisi angka"})
	}
	note := c.FormValue("note")

	// Handle File Upload (lampiran bukti progress)
	file, errFile := c.FormFile("attachment")
	pathFile := ""
	if errFile == nil {
		uploadDir := "./uploads/progress"
		if _, err := os.Stat(uploadDir); os.IsNotExist(err) {
			os.MkdirAll(uploadDir, 0755)
		}

		filename := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(file.Filename))
		pathFile = fmt.Sprintf("uploads/progress/%s", filename)

		if err := c.SaveFile(file, pathFile); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan lampiran"})
		}
	}

	target, err := h.uc.SubmitProgress(actor, uint(id), usecase.SubmitProgressInput{
		Percentage:     percentage,
		Note:           note,
		AttachmentPath: pathFile,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Progress berhasil dilaporkan",
		"data":    target,
	})
}
