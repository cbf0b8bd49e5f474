package handler

import (
	"errors"
	"strconv"

	"worktrack-backend/internal/repository"
	"worktrack-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LeaveHandler struct {
	uc   *usecase.LeaveUsecase
	repo repository.LeaveRepository
}

func NewLeaveHandler(uc *usecase.LeaveUsecase, repo repository.LeaveRepository) *LeaveHandler {
	return &LeaveHandler{uc: uc, repo: repo}
}

func (h *LeaveHandler) List(c *fiber.Ctx) error {
	viewer := actorFromCtx(c)

	filter := repository.LeaveFilter{
		Status:   c.Query("status"),
		Type:     c.Query("type"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
		Page:     c.QueryInt("page", 1),
		Limit:    c.QueryInt("limit", 20),
	}

	list, total, err := h.repo.List(viewer, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data cuti"})
	}

	return c.JSON(fiber.Map{
		"data":  list,
		"total": total,
		"page":  filter.Page,
		"limit": filter.Limit,
	})
}

func (h *LeaveHandler) GetOne(c *fiber.Ctx) error {
	viewer := actorFromCtx(c)
	id, _ := strconv.Atoi(c.Params("id"))

	leave, err := h.repo.GetVisibleByID(viewer, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pengajuan cuti tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data cuti"})
	}

	return c.JSON(fiber.Map{"data": leave})
}

func (h *LeaveHandler) Request(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))

	var req usecase.LeaveRequestInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	leave, err := h.uc.Request(userID, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Pengajuan cuti berhasil dikirim",
		"data":    leave,
	})
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

func (h *LeaveHandler) Approve(c *fiber.Ctx) error {
	actor := actorFromCtx(c)
	id, _ := strconv.Atoi(c.Params("id"))

	leave, err := h.uc.Decide(actor, uint(id), "approve", "")
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Pengajuan cuti disetujui",
		"data":    leave,
	})
}

func (h *LeaveHandler) Reject(c *fiber.Ctx) error {
	actor := actorFromCtx(c)
	id, _ := strconv.Atoi(c.Params("id"))

	var req RejectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	leave, err := h.uc.Decide(actor, uint(id), "reject", req.Reason)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Pengajuan cuti ditolak",
		"data":    leave,
	})
}

func (h *LeaveHandler) Cancel(c *fiber.Ctx) error {
	actor := actorFromCtx(c)
	id, _ := strconv.Atoi(c.Params("id"))

	leave, err := h.uc.Cancel(actor, uint(id))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Pengajuan cuti dibatalkan",
		"data":    leave,
	})
}
