package database

import (
	"log"

	"worktrack-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAll(db *gorm.DB) {
	// 1. Seed Departemen
	dept := model.Department{Name: "Teknologi Informasi", Description: "Divisi pengembangan dan infrastruktur"}
	db.FirstOrCreate(&dept, model.Department{Name: dept.Name})

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	// 2. Seed Akun Admin
	admin := model.User{
		Name:         "Administrator Utama",
		Email:        "admin@worktrack.local",
		Password:     string(hashedPassword),
		Role:         model.RoleAdmin,
		Position:     "System Administrator",
		DepartmentID: &dept.ID,
		IsActive:     true,
	}
	result := db.FirstOrCreate(&admin, model.User{Email: admin.Email})
	if result.Error == nil {
		// Paksa update password agar selalu sinkron dengan "password123"
		db.Model(&admin).Update("password", string(hashedPassword))
		log.Println("Seeding Admin berhasil!")
	}

	// 3. Seed CEO
	ceo := model.User{
		Name:     "Direktur Utama",
		Email:    "ceo@worktrack.local",
		Password: string(hashedPassword),
		Role:     model.RoleCeo,
		Position: "CEO",
		IsActive: true,
	}
	db.FirstOrCreate(&ceo, model.User{Email: ceo.Email})

	// 4. Seed Manager
	manager := model.User{
		Name:         "Budi Manager",
		Email:        "manager@worktrack.local",
		Password:     string(hashedPassword),
		Role:         model.RoleManager,
		Position:     "Engineering Manager",
		DepartmentID: &dept.ID,
		IsActive:     true,
	}
	db.FirstOrCreate(&manager, model.User{Email: manager.Email})

	// 5. Seed Karyawan (bawahan dari Manager)
	karyawan := model.User{
		Name:         "Siti Karyawan",
		Email:        "karyawan@worktrack.local",
		Password:     string(hashedPassword),
		Role:         model.RoleKaryawan,
		Position:     "Software Engineer",
		DepartmentID: &dept.ID,
		ManagerID:    &manager.ID, // PENTING: link ke Manager sebagai atasan
		IsActive:     true,
	}
	db.FirstOrCreate(&karyawan, model.User{Email: karyawan.Email})

	// 6. Seed contoh target untuk karyawan
	target := model.WorkTarget{
		ManagerID:   manager.ID,
		AssignedTo:  karyawan.ID,
		Title:       "Integrasi API Payroll",
		Description: "Integrasi sistem payroll dengan API vendor",
		Priority:    model.PriorityHigh,
		Status:      model.TargetStatusPending,
		Deadline:    "2026-12-31",
	}
	db.FirstOrCreate(&target, model.WorkTarget{Title: target.Title, AssignedTo: karyawan.ID})
}
