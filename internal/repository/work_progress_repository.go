package repository

import (
	"worktrack-backend/internal/model"

	"gorm.io/gorm"
)

type WorkProgressRepository interface {
	GetByTargetID(targetID uint) ([]model.WorkProgress, error)
	Latest(targetID uint) (*model.WorkProgress, error)
}

type workProgressRepository struct {
	db *gorm.DB
}

func NewWorkProgressRepository(db *gorm.DB) WorkProgressRepository {
	return &workProgressRepository{db}
}

func (r *workProgressRepository) GetByTargetID(targetID uint) ([]model.WorkProgress, error) {
	var list []model.WorkProgress
	err := r.db.Where("work_target_id = ?", targetID).
		Order("created_at desc, id desc").Find(&list).Error
	return list, err
}

// Latest: entri progress terbaru = "persentase saat ini" milik target.
// Tie-break deterministik untuk insert dengan timestamp identik:
// created_at tertinggi, lalu id tertinggi.
func (r *workProgressRepository) Latest(targetID uint) (*model.WorkProgress, error) {
	var progress model.WorkProgress
	err := r.db.Where("work_target_id = ?", targetID).
		Order("created_at desc, id desc").First(&progress).Error
	return &progress, err
}
