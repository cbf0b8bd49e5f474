package config

import (
	"fmt"

	"worktrack-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	// Format: user:password@tcp(host:port)/dbname?charset=utf8mb4&parseTime=True&loc=Local
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASSWORD", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnvAsInt("DB_PORT", 3306),
		GetEnv("DB_NAME", "worktrack_db"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Gagal koneksi ke database!")
	}

	fmt.Println("Koneksi Database Berhasil!")

	// Auto Migration: membuat tabel otomatis berdasarkan struct di folder model
	Migrate(db)

	DB = db
}

// Migrate dipisah agar bisa dipakai test dengan database sqlite.
func Migrate(db *gorm.DB) {
	db.AutoMigrate(&model.Department{})
	db.AutoMigrate(&model.User{})
	db.AutoMigrate(&model.WorkTarget{})
	db.AutoMigrate(&model.WorkProgress{})
	db.AutoMigrate(&model.Leave{})
	db.AutoMigrate(&model.Notification{})
	db.AutoMigrate(&model.ActivityLog{})
}
