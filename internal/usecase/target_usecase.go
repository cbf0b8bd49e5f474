package usecase

import (
	"errors"
	"fmt"
	"log"
	"time"

	"worktrack-backend/internal/model"
	"worktrack-backend/internal/notifier"
	"worktrack-backend/internal/repository"

	"gorm.io/gorm"
)

type TargetUsecase struct {
	repo     repository.WorkTargetRepository
	userRepo repository.UserRepository
	logRepo  repository.ActivityLogRepository
	notifier notifier.Notifier
}

func NewTargetUsecase(repo repository.WorkTargetRepository, userRepo repository.UserRepository, logRepo repository.ActivityLogRepository, n notifier.Notifier) *TargetUsecase {
	return &TargetUsecase{repo: repo, userRepo: userRepo, logRepo: logRepo, notifier: n}
}

type CreateTargetInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AssignedTo  uint   `json:"assigned_to"`
	Priority    string `json:"priority"`
	Deadline    string `json:"deadline"`
}

// Create membuat target baru. Manager hanya boleh menugaskan bawahan
// langsungnya (atau dirinya sendiri); admin/ceo bebas.
func (u *TargetUsecase) Create(actor *model.User, in CreateTargetInput) (*model.WorkTarget, error) {
	if !actor.CanDecide() {
		return nil, ErrForbidden
	}
	if in.Title == "" {
		return nil, invalid("title", "judul target wajib diisi")
	}
	if in.Priority == "" {
		in.Priority = model.PriorityMedium
	}
	if !model.ValidPriority(in.Priority) {
		return nil, invalid("priority", "prioritas harus salah satu dari: low, medium, high")
	}
	if in.Deadline != "" {
		if _, err := time.Parse(dateLayout, in.Deadline); err != nil {
			return nil, invalid("deadline", "format tanggal harus YYYY-MM-DD")
		}
	}

	assignee, err := u.userRepo.FindByID(in.AssignedTo)
	if err != nil {
		return nil, invalid("assigned_to", "pegawai tidak ditemukan")
	}
	if actor.Role == model.RoleManager && assignee.ID != actor.ID {
		if assignee.ManagerID == nil || *assignee.ManagerID != actor.ID {
			return nil, ErrForbidden
		}
	}

	target := model.WorkTarget{
		ManagerID:   actor.ID,
		AssignedTo:  assignee.ID,
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		Status:      model.TargetStatusPending,
		Deadline:    in.Deadline,
	}
	if err := u.repo.Create(&target); err != nil {
		return nil, err
	}

	u.notify(notifier.Message{
		UserID:      assignee.ID,
		Type:        model.NotifTargetAssigned,
		Title:       "Target Kerja Baru",
		Body:        fmt.Sprintf("Anda mendapat target baru: %s (deadline %s)", target.Title, target.Deadline),
		Link:        fmt.Sprintf("/targets/%d", target.ID),
		RelatedType: "work_target",
		RelatedID:   target.ID,
	})
	u.record(actor.ID, "target_created", "work_target", target.ID,
		fmt.Sprintf("Target %q untuk %s", target.Title, assignee.Name))

	return &target, nil
}

type SubmitProgressInput struct {
	Percentage     int
	Note           string
	AttachmentPath string
}

// SubmitProgress mencatat laporan progress dan menurunkan status target
// dari persentasenya: >= 100 jadi completed, selain itu in_progress.
// Status completed bersifat monoton: laporan dengan persentase lebih
// rendah setelah completed tetap dicatat tapi tidak menurunkan status.
func (u *TargetUsecase) SubmitProgress(actor *model.User, targetID uint, in SubmitProgressInput) (*model.WorkTarget, error) {
	target, err := u.repo.GetByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Hanya pengerja target yang boleh lapor progress.
	if target.AssignedTo != actor.ID {
		return nil, ErrForbidden
	}
	if in.Percentage < 0 || in.Percentage > 100 {
		return nil, invalid("percentage", "persentase harus di antara 0 dan 100")
	}

	newStatus := model.TargetStatusInProgress
	if in.Percentage >= 100 {
		newStatus = model.TargetStatusCompleted
	}
	if target.Status == model.TargetStatusCompleted {
		newStatus = model.TargetStatusCompleted
	}

	progress := model.WorkProgress{
		WorkTargetID:   target.ID,
		UserID:         actor.ID,
		Percentage:     in.Percentage,
		Note:           in.Note,
		AttachmentPath: in.AttachmentPath,
	}
	if err := u.repo.ApplyProgress(target, &progress, newStatus); err != nil {
		return nil, err
	}

	body := fmt.Sprintf("%s melaporkan progress %d%% untuk target %q", actor.Name, in.Percentage, target.Title)
	if in.AttachmentPath != "" {
		body += " (dengan lampiran)"
	}
	u.notify(notifier.Message{
		UserID:      target.ManagerID,
		Type:        model.NotifProgressAdded,
		Title:       "Laporan Progress Baru",
		Body:        body,
		Link:        fmt.Sprintf("/targets/%d", target.ID),
		RelatedType: "work_target",
		RelatedID:   target.ID,
	})
	u.record(actor.ID, "progress_submitted", "work_progress", progress.ID, body)

	return u.repo.GetByID(target.ID)
}

// Delete: hanya manager pembuat target atau admin/ceo.
func (u *TargetUsecase) Delete(actor *model.User, targetID uint) error {
	target, err := u.repo.GetByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !actor.IsPrivileged() && target.ManagerID != actor.ID {
		return ErrForbidden
	}

	if err := u.repo.Delete(target); err != nil {
		return err
	}
	u.record(actor.ID, "target_deleted", "work_target", target.ID,
		fmt.Sprintf("Target %q dihapus", target.Title))
	return nil
}

func (u *TargetUsecase) notify(msg notifier.Message) {
	if err := u.notifier.Notify(msg); err != nil {
		log.Println("Gagal membuat notifikasi:", err)
	}
}

func (u *TargetUsecase) record(userID uint, action, entity string, entityID uint, desc string) {
	entry := model.ActivityLog{UserID: userID, Action: action, Entity: entity, EntityID: entityID, Description: desc}
	if err := u.logRepo.Create(&entry); err != nil {
		log.Println("Gagal mencatat activity log:", err)
	}
}
