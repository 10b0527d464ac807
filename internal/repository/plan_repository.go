package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymhub/internal/model"
)

// WorkoutPlanRepository defines workout plan persistence operations.
type WorkoutPlanRepository interface {
	Create(ctx context.Context, plan *model.WorkoutPlan) error
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]model.WorkoutPlan, error)
}

type workoutPlanRepository struct {
	db *gorm.DB
}

// NewWorkoutPlanRepository creates a new workout plan repository.
func NewWorkoutPlanRepository(db *gorm.DB) WorkoutPlanRepository {
	return &workoutPlanRepository{db: db}
}

// Create creates a new workout plan.
func (r *workoutPlanRepository) Create(ctx context.Context, plan *model.WorkoutPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

// ListByMember returns the member's workout plans, newest first, with the
// assigning trainer preloaded.
func (r *workoutPlanRepository) ListByMember(ctx context.Context, memberID uuid.UUID) ([]model.WorkoutPlan, error) {
	var plans []model.WorkoutPlan
	err := r.db.WithContext(ctx).
		Preload("Trainer").
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// DietPlanRepository defines diet plan persistence operations.
type DietPlanRepository interface {
	Create(ctx context.Context, plan *model.DietPlan) error
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]model.DietPlan, error)
}

type dietPlanRepository struct {
	db *gorm.DB
}

// NewDietPlanRepository creates a new diet plan repository.
func NewDietPlanRepository(db *gorm.DB) DietPlanRepository {
	return &dietPlanRepository{db: db}
}

// Create creates a new diet plan.
func (r *dietPlanRepository) Create(ctx context.Context, plan *model.DietPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

// ListByMember returns the member's diet plans, newest first, with the
// assigning trainer preloaded.
func (r *dietPlanRepository) ListByMember(ctx context.Context, memberID uuid.UUID) ([]model.DietPlan, error) {
	var plans []model.DietPlan
	err := r.db.WithContext(ctx).
		Preload("Trainer").
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}
