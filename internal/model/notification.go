package model

import "gorm.io/gorm"

// Tipe notifikasi yang dikirim sebagai efek samping transisi status.
const (
	NotifLeaveSubmitted = "leave_submitted"
	NotifLeaveApproved  = "leave_approved"
	NotifLeaveRejected  = "leave_rejected"
	NotifTargetAssigned = "target_assigned"
	NotifProgressAdded  = "progress_added"
)

type Notification struct {
	gorm.Model
	UserID      uint   `json:"user_id"` // Penerima
	Type        string `json:"type"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	Link        string `json:"link"`
	RelatedType string `json:"related_type"`
	RelatedID   uint   `json:"related_id"`
	IsRead      bool   `json:"is_read" gorm:"default:false"`
}
