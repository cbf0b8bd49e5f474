package repository

import (
	"worktrack-backend/internal/model"

	"gorm.io/gorm"
)

type DepartmentRepository interface {
	GetAll() ([]model.Department, error)
	GetByID(id uint) (*model.Department, error)
	Create(dept *model.Department) error
	Update(dept *model.Department) error
	Delete(id uint) error
	CountMembers(id uint) (int64, error)
}

type departmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db}
}

func (r *departmentRepository) GetAll() ([]model.Department, error) {
	var list []model.Department
	err := r.db.Order("name asc").Find(&list).Error
	return list, err
}

func (r *departmentRepository) GetByID(id uint) (*model.Department, error) {
	var dept model.Department
	err := r.db.First(&dept, id).Error
	return &dept, err
}

func (r *departmentRepository) Create(dept *model.Department) error {
	return r.db.Create(dept).Error
}

func (r *departmentRepository) Update(dept *model.Department) error {
	return r.db.Save(dept).Error
}

func (r *departmentRepository) Delete(id uint) error {
	return r.db.Delete(&model.Department{}, id).Error
}

func (r *departmentRepository) CountMembers(id uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("department_id = ?", id).Count(&count).Error
	return count, err
}
