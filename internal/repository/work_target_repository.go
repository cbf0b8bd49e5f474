package repository

import (
	"worktrack-backend/internal/model"
	"worktrack-backend/internal/scope"

	"gorm.io/gorm"
)

// TargetFilter: filter tambahan dari caller, diterapkan SETELAH
// visibility scope mempersempit query.
type TargetFilter struct {
	Status   string
	Priority string
	Search   string
	DateFrom string // Deadline >= DateFrom
	DateTo   string // Deadline <= DateTo
	Page     int
	Limit    int
}

type WorkTargetRepository interface {
	Create(target *model.WorkTarget) error
	GetByID(id uint) (*model.WorkTarget, error)
	GetVisibleByID(viewer *model.User, id uint) (*model.WorkTarget, error)
	List(viewer *model.User, filter TargetFilter) ([]model.WorkTarget, int64, error)
	ApplyProgress(target *model.WorkTarget, progress *model.WorkProgress, newStatus string) error
	Delete(target *model.WorkTarget) error
	MarkOverdue(today string) error
	CountByStatus(viewer *model.User) (map[string]int64, error)
}

type workTargetRepository struct {
	db *gorm.DB
}

func NewWorkTargetRepository(db *gorm.DB) WorkTargetRepository {
	return &workTargetRepository{db}
}

func (r *workTargetRepository) Create(target *model.WorkTarget) error {
	return r.db.Create(target).Error
}

func (r *workTargetRepository) GetByID(id uint) (*model.WorkTarget, error) {
	var target model.WorkTarget
	err := r.db.Preload("Assignee").Preload("Manager").First(&target, id).Error
	return &target, err
}

// GetVisibleByID: ambil satu target DI DALAM scope viewer. Baris di luar
// scope diperlakukan sama dengan baris yang tidak ada (ErrRecordNotFound).
func (r *workTargetRepository) GetVisibleByID(viewer *model.User, id uint) (*model.WorkTarget, error) {
	var target model.WorkTarget
	err := r.db.Scopes(scope.Visible(scope.WorkTargets, viewer)).
		Preload("Assignee").Preload("Manager").
		First(&target, "work_targets.id = ?", id).Error
	return &target, err
}

func (r *workTargetRepository) List(viewer *model.User, filter TargetFilter) ([]model.WorkTarget, int64, error) {
	query := r.db.Model(&model.WorkTarget{}).Scopes(scope.Visible(scope.WorkTargets, viewer))

	if filter.Status != "" {
		query = query.Where("work_targets.status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("work_targets.priority = ?", filter.Priority)
	}
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("work_targets.title LIKE ?", searchPattern)
	}
	if filter.DateFrom != "" {
		query = query.Where("work_targets.deadline >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		query = query.Where("work_targets.deadline <= ?", filter.DateTo)
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

	var list []model.WorkTarget
	err := query.Preload("Assignee").Preload("Manager").
		Order("work_targets.created_at desc").Find(&list).Error
	return list, total, err
}

// ApplyProgress menyimpan entri progress dan status target turunannya
// sebagai satu transaksi: keduanya masuk, atau tidak sama sekali.
func (r *workTargetRepository) ApplyProgress(target *model.WorkTarget, progress *model.WorkProgress, newStatus string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(progress).Error; err != nil {
			return err
		}
		if target.Status != newStatus {
			if err := tx.Model(&model.WorkTarget{}).Where("id = ?", target.ID).
				Update("status", newStatus).Error; err != nil {
				return err
			}
			target.Status = newStatus
		}
		return nil
	})
}

// Delete menghapus target beserta seluruh progress-nya (cascade).
// Progress dihapus permanen dengan Unscoped agar tidak ada baris yatim.
func (r *workTargetRepository) Delete(target *model.WorkTarget) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("work_target_id = ?", target.ID).Delete(&model.WorkProgress{}).Error; err != nil {
			return err
		}
		return tx.Delete(target).Error
	})
}

// MarkOverdue: target pending/in_progress yang deadline-nya sudah lewat
// ditandai overdue. Target completed tidak pernah disentuh.
func (r *workTargetRepository) MarkOverdue(today string) error {
	return r.db.Model(&model.WorkTarget{}).
		Where("status IN ? AND deadline != '' AND deadline < ?",
			[]string{model.TargetStatusPending, model.TargetStatusInProgress}, today).
		Update("status", model.TargetStatusOverdue).Error
}

func (r *workTargetRepository) CountByStatus(viewer *model.User) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.Model(&model.WorkTarget{}).
		Scopes(scope.Visible(scope.WorkTargets, viewer)).
		Select("status, count(*) as count").Group("status").Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := make(map[string]int64)
	for _, row := range rows {
		stats[row.Status] = row.Count
	}
	return stats, nil
}
