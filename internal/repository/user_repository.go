package repository

import (
	"worktrack-backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	FindByEmail(email string) (*model.User, error)
	FindByID(id uint) (*model.User, error)
	Create(user *model.User) error
	Update(user *model.User) error
	Delete(id uint) error
	GetAll(search string) ([]model.User, error)
	GetByManagerID(managerID uint) ([]model.User, error)
	Count() (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	// Preload Manager dan Department agar datanya lengkap saat login
	err := r.db.Preload("Manager").Preload("Department").Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.db.Preload("Manager").Preload("Department").First(&user, id).Error
	return &user, err
}

func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) Update(user *model.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) Delete(id uint) error {
	return r.db.Delete(&model.User{}, id).Error
}

func (r *userRepository) GetAll(search string) ([]model.User, error) {
	var users []model.User
	query := r.db.Preload("Manager").Preload("Department")

	if search != "" {
		searchPattern := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", searchPattern, searchPattern)
	}

	err := query.Find(&users).Error
	return users, err
}

func (r *userRepository) GetByManagerID(managerID uint) ([]model.User, error) {
	var users []model.User
	err := r.db.Where("manager_id = ?", managerID).Preload("Department").Find(&users).Error
	return users, err
}

func (r *userRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
