package repository

import (
	"worktrack-backend/internal/model"
	"worktrack-backend/internal/scope"

	"gorm.io/gorm"
)

type LogFilter struct {
	Action   string
	Entity   string
	DateFrom string
	DateTo   string
	Page     int
	Limit    int
}

type ActivityLogRepository interface {
	Create(entry *model.ActivityLog) error
	List(viewer *model.User, filter LogFilter) ([]model.ActivityLog, int64, error)
}

type activityLogRepository struct {
	db *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepository{db}
}

func (r *activityLogRepository) Create(entry *model.ActivityLog) error {
	return r.db.Create(entry).Error
}

func (r *activityLogRepository) List(viewer *model.User, filter LogFilter) ([]model.ActivityLog, int64, error) {
	query := r.db.Model(&model.ActivityLog{}).Scopes(scope.Visible(scope.ActivityLogs, viewer))

	if filter.Action != "" {
		query = query.Where("activity_logs.action = ?", filter.Action)
	}
	if filter.Entity != "" {
		query = query.Where("activity_logs.entity = ?", filter.Entity)
	}
	if filter.DateFrom != "" {
		query = query.Where("activity_logs.created_at >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		query = query.Where("activity_logs.created_at <= ?", filter.DateTo+" 23:59:59")
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

	var list []model.ActivityLog
	err := query.Order("activity_logs.created_at desc").Find(&list).Error
	return list, total, err
}
