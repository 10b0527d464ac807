package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymhub/internal/model"
)

// ProgressRepository defines progress persistence operations.
type ProgressRepository interface {
	Create(ctx context.Context, progress *model.Progress) error
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]model.Progress, error)
}

type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository creates a new progress repository.
func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

// Create creates a new progress record.
func (r *progressRepository) Create(ctx context.Context, progress *model.Progress) error {
	return r.db.WithContext(ctx).Create(progress).Error
}

// ListByMember returns the member's progress history, newest first, with the
// recording trainer preloaded.
func (r *progressRepository) ListByMember(ctx context.Context, memberID uuid.UUID) ([]model.Progress, error) {
	var records []model.Progress
	err := r.db.WithContext(ctx).
		Preload("Trainer").
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
