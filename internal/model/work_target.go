package model

import "gorm.io/gorm"

const (
	TargetStatusPending    = "pending"
	TargetStatusInProgress = "in_progress"
	TargetStatusCompleted  = "completed"
	TargetStatusOverdue    = "overdue"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type WorkTarget struct {
	gorm.Model
	ManagerID   uint   `json:"manager_id"`  // Pembuat target
	AssignedTo  uint   `json:"assigned_to"` // Pemilik / pengerja target
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	Priority    string `json:"priority" gorm:"default:medium"`
	Status      string `json:"status" gorm:"default:pending"`
	Deadline    string `json:"deadline"` // Format YYYY-MM-DD

	// Relasi untuk Preload data pembuat, pengerja, dan progress
	Manager  User           `json:"manager" gorm:"foreignKey:ManagerID"`
	Assignee User           `json:"assignee" gorm:"foreignKey:AssignedTo"`
	Progress []WorkProgress `json:"progress,omitempty" gorm:"foreignKey:WorkTargetID"`
}

type WorkProgress struct {
	gorm.Model
	WorkTargetID   uint   `json:"work_target_id"`
	UserID         uint   `json:"user_id"` // Pelapor (= assignee target)
	Percentage     int    `json:"percentage"`
	Note           string `json:"note"`
	AttachmentPath string `json:"attachment_path"`

	User User `json:"user" gorm:"foreignKey:UserID"`
}
