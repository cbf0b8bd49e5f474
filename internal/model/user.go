package model

import "gorm.io/gorm"

// Role pengguna. Disimpan sebagai string di database, tapi semua
// pengecekan wajib lewat konstanta ini (bukan if-chain per handler).
const (
	RoleAdmin    = "admin"
	RoleCeo      = "ceo"
	RoleManager  = "manager"
	RoleKaryawan = "karyawan"
)

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleCeo, RoleManager, RoleKaryawan:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	ManagerID    *uint  `json:"manager_id"` // Self-reference (atasan langsung)
	DepartmentID *uint  `json:"department_id"`
	Name         string `json:"name"`
	Email        string `json:"email" gorm:"unique;not null"`
	Password     string `json:"-"`
	Role         string `json:"role" gorm:"default:karyawan"`
	Position     string `json:"position"`
	Phone        string `json:"phone"`
	Photo        string `json:"photo"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`

	// Relasi
	Manager      *User       `json:"manager,omitempty" gorm:"foreignKey:ManagerID"`
	Subordinates []User      `json:"subordinates,omitempty" gorm:"foreignKey:ManagerID"`
	Department   *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
}

// IsPrivileged: admin dan ceo melihat semua data tanpa batasan tree atasan-bawahan.
func (u *User) IsPrivileged() bool {
	return u.Role == RoleAdmin || u.Role == RoleCeo
}

// CanDecide: role yang boleh memproses approval (cuti dan target).
func (u *User) CanDecide() bool {
	return u.Role == RoleAdmin || u.Role == RoleCeo || u.Role == RoleManager
}
