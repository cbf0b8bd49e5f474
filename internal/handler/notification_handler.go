package handler

import (
	"strconv"

	"worktrack-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	repo repository.NotificationRepository
}

func NewNotificationHandler(repo repository.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{repo: repo}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))

	list, err := h.repo.GetByUserID(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil notifikasi"})
	}

	return c.JSON(fiber.Map{"data": list})
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))
	id, _ := strconv.Atoi(c.Params("id"))

	notif, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Notifikasi tidak ditemukan"})
	}
	// Notifikasi milik orang lain disembunyikan, bukan ditolak.
	if notif.UserID != userID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Notifikasi tidak ditemukan"})
	}

	if err := h.repo.MarkRead(notif.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menandai notifikasi"})
	}

	return c.JSON(fiber.Map{"message": "Notifikasi ditandai sudah dibaca"})
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))

	if err := h.repo.MarkAllRead(userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menandai notifikasi"})
	}

	return c.JSON(fiber.Map{"message": "Semua notifikasi ditandai sudah dibaca"})
}

func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))

	count, err := h.repo.CountUnread(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghitung notifikasi"})
	}

	return c.JSON(fiber.Map{"data": fiber.Map{"unread": count}})
}
