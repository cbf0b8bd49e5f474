package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	LeaveStatusPending   = "pending"
	LeaveStatusApproved  = "approved"
	LeaveStatusRejected  = "rejected"
	LeaveStatusCancelled = "cancelled"
)

const (
	LeaveTypeAnnual     = "annual"
	LeaveTypeSick       = "sick"
	LeaveTypePermission = "permission"
	LeaveTypeOther      = "other"
)

func ValidLeaveType(t string) bool {
	switch t {
	case LeaveTypeAnnual, LeaveTypeSick, LeaveTypePermission, LeaveTypeOther:
		return true
	}
	return false
}

type Leave struct {
	gorm.Model
	UserID       uint       `json:"user_id"`
	Type         string     `json:"type"`
	StartDate    string     `json:"start_date"` // Format YYYY-MM-DD
	EndDate      string     `json:"end_date"`
	Reason       string     `json:"reason"`
	DaysCount    int        `json:"days_count"` // Jumlah hari kerja, inklusif
	Status       string     `json:"status" gorm:"default:pending"`
	ApprovedBy   *uint      `json:"approved_by"`
	ApprovedAt   *time.Time `json:"approved_at"`
	RejectReason string     `json:"reject_reason"`

	// Relasi untuk Preload data pemohon
	User User `json:"user" gorm:"foreignKey:UserID"`
}

// Decided: status terminal, tidak ada transisi lanjutan yang sah.
func (l *Leave) Decided() bool {
	return l.Status != LeaveStatusPending
}
