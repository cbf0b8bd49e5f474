package handler

import (
	"worktrack-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	targetRepo repository.WorkTargetRepository
	leaveRepo  repository.LeaveRepository
	userRepo   repository.UserRepository
	notifRepo  repository.NotificationRepository
}

func NewDashboardHandler(targetRepo repository.WorkTargetRepository, leaveRepo repository.LeaveRepository, userRepo repository.UserRepository, notifRepo repository.NotificationRepository) *DashboardHandler {
	return &DashboardHandler{targetRepo: targetRepo, leaveRepo: leaveRepo, userRepo: userRepo, notifRepo: notifRepo}
}

// GetStats: ringkasan per role. Semua angka target/cuti melewati
// visibility scope yang sama dengan endpoint listing.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	viewer := actorFromCtx(c)

	stats := fiber.Map{}

	targetStats, err := h.targetRepo.CountByStatus(viewer)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data dashboard"})
	}
	stats["targets_by_status"] = targetStats

	pendingLeaves, err := h.leaveRepo.CountPending(viewer)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data dashboard"})
	}
	stats["pending_leaves"] = pendingLeaves

	unread, err := h.notifRepo.CountUnread(viewer.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data dashboard"})
	}
	stats["unread_notifications"] = unread

	if viewer.IsPrivileged() {
		totalUsers, err := h.userRepo.Count()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data dashboard"})
		}
		stats["total_active_users"] = totalUsers
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil statistik",
		"data":    stats,
	})
}
