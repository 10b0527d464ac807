package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymhub/internal/model"
)

// TrainerRepository defines trainer persistence operations.
type TrainerRepository interface {
	Create(ctx context.Context, trainer *model.Trainer) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Trainer, error)
	FindByEmail(ctx context.Context, email string) (*model.Trainer, error)
}

type trainerRepository struct {
	db *gorm.DB
}

// NewTrainerRepository creates a new trainer repository.
func NewTrainerRepository(db *gorm.DB) TrainerRepository {
	return &trainerRepository{db: db}
}

// Create creates a new trainer.
func (r *trainerRepository) Create(ctx context.Context, trainer *model.Trainer) error {
	return r.db.WithContext(ctx).Create(trainer).Error
}

// FindByID finds a trainer by ID.
func (r *trainerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Trainer, error) {
	var trainer model.Trainer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&trainer).Error; err != nil {
		return nil, err
	}
	return &trainer, nil
}

// FindByEmail finds a trainer by email.
func (r *trainerRepository) FindByEmail(ctx context.Context, email string) (*model.Trainer, error) {
	var trainer model.Trainer
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&trainer).Error; err != nil {
		return nil, err
	}
	return &trainer, nil
}
