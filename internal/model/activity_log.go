package model

import "gorm.io/gorm"

// ActivityLog adalah catatan audit append-only. Hanya dibaca untuk
// pelaporan, tidak pernah dipakai dalam logika otorisasi.
type ActivityLog struct {
	gorm.Model
	UserID      uint   `json:"user_id"` // Pelaku aksi
	Action      string `json:"action"`  // Contoh: leave_requested, target_created
	Entity      string `json:"entity"`
	EntityID    uint   `json:"entity_id"`
	Description string `json:"description"`
}
