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

const dateLayout = "2006-01-02"

// Panjang minimal alasan pengajuan maupun alasan penolakan.
const minReasonLength = 10

type LeaveUsecase struct {
	repo     repository.LeaveRepository
	userRepo repository.UserRepository
	logRepo  repository.ActivityLogRepository
	notifier notifier.Notifier
}

func NewLeaveUsecase(repo repository.LeaveRepository, userRepo repository.UserRepository, logRepo repository.ActivityLogRepository, n notifier.Notifier) *LeaveUsecase {
	return &LeaveUsecase{repo: repo, userRepo: userRepo, logRepo: logRepo, notifier: n}
}

type LeaveRequestInput struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

// Request membuat pengajuan cuti baru dengan status pending dan
// mengirim notifikasi ke atasan langsung pemohon.
func (u *LeaveUsecase) Request(actorID uint, in LeaveRequestInput) (*model.Leave, error) {
	if !model.ValidLeaveType(in.Type) {
		return nil, invalid("type", "jenis cuti harus salah satu dari: annual, sick, permission, other")
	}
	if len(in.Reason) < minReasonLength {
		return nil, invalid("reason", fmt.Sprintf("alasan minimal %d karakter", minReasonLength))
	}

	start, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return nil, invalid("start_date", "format tanggal harus YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, in.EndDate)
	if err != nil {
		return nil, invalid("end_date", "format tanggal harus YYYY-MM-DD")
	}
	if end.Before(start) {
		return nil, invalid("end_date", "tanggal selesai tidak boleh sebelum tanggal mulai")
	}

	days := CountWorkdays(start, end)
	if days < 1 {
		return nil, invalid("start_date", "rentang tanggal tidak mengandung hari kerja")
	}

	owner, err := u.userRepo.FindByID(actorID)
	if err != nil {
		return nil, ErrNotFound
	}

	leave := model.Leave{
		UserID:    owner.ID,
		Type:      in.Type,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Reason:    in.Reason,
		DaysCount: days,
		Status:    model.LeaveStatusPending,
	}
	if err := u.repo.Create(&leave); err != nil {
		return nil, err
	}

	// Notifikasi ke atasan langsung, best-effort.
	if owner.ManagerID != nil {
		u.notify(notifier.Message{
			UserID:      *owner.ManagerID,
			Type:        model.NotifLeaveSubmitted,
			Title:       "Pengajuan Cuti Baru",
			Body:        fmt.Sprintf("%s mengajukan cuti %s (%s s/d %s, %d hari kerja)", owner.Name, leave.Type, leave.StartDate, leave.EndDate, leave.DaysCount),
			Link:        fmt.Sprintf("/leaves/%d", leave.ID),
			RelatedType: "leave",
			RelatedID:   leave.ID,
		})
	}
	u.record(owner.ID, "leave_requested", "leave", leave.ID,
		fmt.Sprintf("Pengajuan cuti %s %s s/d %s", leave.Type, leave.StartDate, leave.EndDate))

	return &leave, nil
}

// Decide memproses approve/reject pengajuan cuti. Hanya sah dari status
// pending; status lain menghasilkan Conflict tanpa mengubah baris.
func (u *LeaveUsecase) Decide(actor *model.User, leaveID uint, decision string, reason string) (*model.Leave, error) {
	if decision != "approve" && decision != "reject" {
		return nil, invalid("decision", "keputusan harus approve atau reject")
	}
	if decision == "reject" && len(reason) < minReasonLength {
		return nil, invalid("reason", fmt.Sprintf("alasan penolakan minimal %d karakter", minReasonLength))
	}

	leave, err := u.repo.GetByID(leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := u.authorizeDecision(actor, leave); err != nil {
		return nil, err
	}

	if leave.Decided() {
		return nil, conflict("pengajuan cuti sudah berstatus %s", leave.Status)
	}

	newStatus := model.LeaveStatusApproved
	notifType := model.NotifLeaveApproved
	notifTitle := "Cuti Disetujui"
	notifBody := fmt.Sprintf("Pengajuan cuti %s s/d %s disetujui oleh %s", leave.StartDate, leave.EndDate, actor.Name)
	if decision == "reject" {
		newStatus = model.LeaveStatusRejected
		notifType = model.NotifLeaveRejected
		notifTitle = "Cuti Ditolak"
		notifBody = fmt.Sprintf("Pengajuan cuti %s s/d %s ditolak: %s", leave.StartDate, leave.EndDate, reason)
	}

	// Status + approver + timestamp ditulis sebagai satu unit. Guard
	// "masih pending" di statement menangkal keputusan ganda yang lolos
	// pengecekan di atas karena balapan antar request.
	applied, err := u.repo.ApplyDecision(leave.ID, newStatus, actor.ID, time.Now(), reason)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, conflict("pengajuan cuti sudah diputuskan")
	}

	u.notify(notifier.Message{
		UserID:      leave.UserID,
		Type:        notifType,
		Title:       notifTitle,
		Body:        notifBody,
		Link:        fmt.Sprintf("/leaves/%d", leave.ID),
		RelatedType: "leave",
		RelatedID:   leave.ID,
	})
	u.record(actor.ID, "leave_"+newStatus, "leave", leave.ID, notifBody)

	return u.repo.GetByID(leave.ID)
}

// Cancel membatalkan pengajuan. Hanya pemilik pengajuan yang boleh,
// dan hanya selama masih pending. Tanpa notifikasi.
func (u *LeaveUsecase) Cancel(actor *model.User, leaveID uint) (*model.Leave, error) {
	leave, err := u.repo.GetByID(leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if leave.UserID != actor.ID {
		return nil, ErrForbidden
	}
	if leave.Decided() {
		return nil, conflict("pengajuan cuti sudah berstatus %s", leave.Status)
	}

	applied, err := u.repo.ApplyCancel(leave.ID)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, conflict("pengajuan cuti sudah diputuskan")
	}

	u.record(actor.ID, "leave_cancelled", "leave", leave.ID, "Pengajuan cuti dibatalkan pemohon")

	return u.repo.GetByID(leave.ID)
}

// authorizeDecision: admin/ceo boleh memutuskan semua pengajuan; manager
// hanya pengajuan bawahan langsungnya; karyawan tidak pernah boleh.
func (u *LeaveUsecase) authorizeDecision(actor *model.User, leave *model.Leave) error {
	switch actor.Role {
	case model.RoleAdmin, model.RoleCeo:
		return nil
	case model.RoleManager:
		owner := leave.User
		if owner.ID == 0 {
			loaded, err := u.userRepo.FindByID(leave.UserID)
			if err != nil {
				return ErrForbidden
			}
			owner = *loaded
		}
		if owner.ManagerID == nil || *owner.ManagerID != actor.ID {
			return ErrForbidden
		}
		return nil
	default:
		return ErrForbidden
	}
}

// notify: kegagalan notifikasi dicatat tapi tidak membatalkan transisi.
func (u *LeaveUsecase) notify(msg notifier.Message) {
	if err := u.notifier.Notify(msg); err != nil {
		log.Println("Gagal membuat notifikasi:", err)
	}
}

func (u *LeaveUsecase) record(userID uint, action, entity string, entityID uint, desc string) {
	entry := model.ActivityLog{UserID: userID, Action: action, Entity: entity, EntityID: entityID, Description: desc}
	if err := u.logRepo.Create(&entry); err != nil {
		log.Println("Gagal mencatat activity log:", err)
	}
}

// CountWorkdays menghitung jumlah hari kerja (Senin-Jumat) antara dua
// tanggal, inklusif di kedua ujung. Sabtu dan Minggu dilewati.
func CountWorkdays(start, end time.Time) int {
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Saturday && d.Weekday() != time.Sunday {
			count++
		}
	}
	return count
}
