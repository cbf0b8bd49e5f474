package repository

import (
	"time"

	"worktrack-backend/internal/model"
	"worktrack-backend/internal/scope"

	"gorm.io/gorm"
)

type LeaveFilter struct {
	Status   string
	Type     string
	DateFrom string // StartDate >= DateFrom
	DateTo   string // StartDate <= DateTo
	Page     int
	Limit    int
}

type LeaveRepository interface {
	Create(leave *model.Leave) error
	GetByID(id uint) (*model.Leave, error)
	GetVisibleByID(viewer *model.User, id uint) (*model.Leave, error)
	List(viewer *model.User, filter LeaveFilter) ([]model.Leave, int64, error)
	ApplyDecision(id uint, status string, approvedBy uint, approvedAt time.Time, rejectReason string) (bool, error)
	ApplyCancel(id uint) (bool, error)
	CountPending(viewer *model.User) (int64, error)
}

type leaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) LeaveRepository {
	return &leaveRepository{db}
}

func (r *leaveRepository) Create(leave *model.Leave) error {
	return r.db.Create(leave).Error
}

func (r *leaveRepository) GetByID(id uint) (*model.Leave, error) {
	var leave model.Leave
	err := r.db.Preload("User").First(&leave, id).Error
	return &leave, err
}

func (r *leaveRepository) GetVisibleByID(viewer *model.User, id uint) (*model.Leave, error) {
	var leave model.Leave
	err := r.db.Scopes(scope.Visible(scope.Leaves, viewer)).
		Preload("User").First(&leave, "leaves.id = ?", id).Error
	return &leave, err
}

func (r *leaveRepository) List(viewer *model.User, filter LeaveFilter) ([]model.Leave, int64, error) {
	query := r.db.Model(&model.Leave{}).Scopes(scope.Visible(scope.Leaves, viewer))

	if filter.Status != "" {
		query = query.Where("leaves.status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("leaves.type = ?", filter.Type)
	}
	if filter.DateFrom != "" {
		query = query.Where("leaves.start_date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		query = query.Where("leaves.start_date <= ?", filter.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.Limit).Limit(filter.Limit)
	}

	var list []model.Leave
	err := query.Preload("User").Order("leaves.created_at desc").Find(&list).Error
	return list, total, err
}

// ApplyDecision menulis status + approver + timestamp sebagai SATU statement
// dengan guard "status = pending". Return false kalau baris sudah diputuskan
// oleh request lain (guard gagal) — caller menerjemahkan jadi Conflict.
func (r *leaveRepository) ApplyDecision(id uint, status string, approvedBy uint, approvedAt time.Time, rejectReason string) (bool, error) {
	result := r.db.Model(&model.Leave{}).
		Where("id = ? AND status = ?", id, model.LeaveStatusPending).
		Updates(map[string]interface{}{
			"status":        status,
			"approved_by":   approvedBy,
			"approved_at":   approvedAt,
			"reject_reason": rejectReason,
		})
	return result.RowsAffected > 0, result.Error
}

func (r *leaveRepository) ApplyCancel(id uint) (bool, error) {
	result := r.db.Model(&model.Leave{}).
		Where("id = ? AND status = ?", id, model.LeaveStatusPending).
		Update("status", model.LeaveStatusCancelled)
	return result.RowsAffected > 0, result.Error
}

func (r *leaveRepository) CountPending(viewer *model.User) (int64, error) {
	var count int64
	err := r.db.Model(&model.Leave{}).
		Scopes(scope.Visible(scope.Leaves, viewer)).
		Where("leaves.status = ?", model.LeaveStatusPending).
		Count(&count).Error
	return count, err
}
