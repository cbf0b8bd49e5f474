package repository

import (
	"worktrack-backend/internal/model"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(notif *model.Notification) error
	GetByUserID(userID uint) ([]model.Notification, error)
	GetByID(id uint) (*model.Notification, error)
	MarkRead(id uint) error
	MarkAllRead(userID uint) error
	CountUnread(userID uint) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db}
}

func (r *notificationRepository) Create(notif *model.Notification) error {
	return r.db.Create(notif).Error
}

func (r *notificationRepository) GetByUserID(userID uint) ([]model.Notification, error) {
	var list []model.Notification
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Limit(100).Find(&list).Error
	return list, err
}

func (r *notificationRepository) GetByID(id uint) (*model.Notification, error) {
	var notif model.Notification
	err := r.db.First(&notif, id).Error
	return &notif, err
}

func (r *notificationRepository) MarkRead(id uint) error {
	return r.db.Model(&model.Notification{}).Where("id = ?", id).Update("is_read", true).Error
}

func (r *notificationRepository) MarkAllRead(userID uint) error {
	return r.db.Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

func (r *notificationRepository) CountUnread(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}
