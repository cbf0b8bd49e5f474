// Package scope menghitung subset baris yang boleh dilihat seorang user
// sebelum filter dari caller (status, tanggal, search) diterapkan.
package scope

import (
	"worktrack-backend/internal/model"

	"gorm.io/gorm"
)

// Kind memilih kolom pemilik baris per jenis entitas.
type Kind string

const (
	WorkTargets  Kind = "work_targets"
	Leaves       Kind = "leaves"
	ActivityLogs Kind = "activity_logs"
)

func ownerColumn(kind Kind) string {
	switch kind {
	case WorkTargets:
		return "work_targets.assigned_to"
	case Leaves:
		return "leaves.user_id"
	case ActivityLogs:
		return "activity_logs.user_id"
	}
	return "user_id"
}

// Visible mengembalikan GORM scope sesuai role viewer:
//   - admin/ceo  : tanpa batasan
//   - manager    : baris milik bawahan langsung (manager_id = viewer) plus
//     milik viewer sendiri; khusus WorkTarget juga baris yang dia buat
//     sendiri (manager_id di target). Kedua syarat itu di-OR, bukan di-AND:
//     target untuk bawahan bisa saja dibuat admin/ceo dan tetap harus terlihat.
//   - karyawan   : hanya baris miliknya sendiri, tidak ada visibilitas transitif
func Visible(kind Kind, viewer *model.User) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch viewer.Role {
		case model.RoleAdmin, model.RoleCeo:
			return db
		case model.RoleManager:
			// Relasi atasan-bawahan hanya satu level, cukup subquery
			// ke parent pointer tanpa tree walk rekursif.
			owned := ownerColumn(kind) + " IN (SELECT id FROM users WHERE (manager_id = ? OR id = ?) AND deleted_at IS NULL)"
			if kind == WorkTargets {
				return db.Where("work_targets.manager_id = ? OR "+owned, viewer.ID, viewer.ID, viewer.ID)
			}
			return db.Where(owned, viewer.ID, viewer.ID)
		default:
			return db.Where(ownerColumn(kind)+" = ?", viewer.ID)
		}
	}
}
