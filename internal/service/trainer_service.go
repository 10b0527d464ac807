package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "gymhub/internal/errors"
	"gymhub/internal/model"
	"gymhub/internal/repository"
)

const (
	memberListCacheKey = "trainer:members"
	memberListCacheTTL = time.Minute
)

// ProgressInput carries validated progress measurement fields.
type ProgressInput struct {
	Weight     float64
	BodyFat    float64
	MuscleMass float64
	Notes      string
}

// TrainerService serves trainer-side member management.
type TrainerService interface {
	ListMembers(ctx context.Context) ([]model.Member, error)
	AssignWorkoutPlan(ctx context.Context, memberID, trainerID uuid.UUID, planDetails string) (*model.WorkoutPlan, error)
	AssignDietPlan(ctx context.Context, memberID, trainerID uuid.UUID, dietDetails string) (*model.DietPlan, error)
	RecordProgress(ctx context.Context, memberID, trainerID uuid.UUID, input ProgressInput) (*model.Progress, error)
}

type trainerService struct {
	memberRepo   repository.MemberRepository
	workoutRepo  repository.WorkoutPlanRepository
	dietRepo     repository.DietPlanRepository
	progressRepo repository.ProgressRepository
	cache        Cache
}

// NewTrainerService creates a new trainer service.
func NewTrainerService(
	memberRepo repository.MemberRepository,
	workoutRepo repository.WorkoutPlanRepository,
	dietRepo repository.DietPlanRepository,
	progressRepo repository.ProgressRepository,
	cache Cache,
) TrainerService {
	return &trainerService{
		memberRepo:   memberRepo,
		workoutRepo:  workoutRepo,
		dietRepo:     dietRepo,
		progressRepo: progressRepo,
		cache:        cache,
	}
}

// ListMembers returns all members, newest joiners first, with caching. The
// short TTL bounds staleness after signups.
func (s *trainerService) ListMembers(ctx context.Context) ([]model.Member, error) {
	if data, _ := s.cache.Get(ctx, memberListCacheKey); data != nil {
		var cached []model.Member
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	if payload, err := json.Marshal(members); err == nil {
		_ = s.cache.Set(ctx, memberListCacheKey, payload, memberListCacheTTL)
	}

	return members, nil
}

// AssignWorkoutPlan appends a new workout plan for the member.
func (s *trainerService) AssignWorkoutPlan(ctx context.Context, memberID, trainerID uuid.UUID, planDetails string) (*model.WorkoutPlan, error) {
	if err := s.checkMember(ctx, memberID); err != nil {
		return nil, err
	}

	plan := &model.WorkoutPlan{
		MemberID:    memberID,
		TrainerID:   trainerID,
		PlanDetails: planDetails,
	}
	if err := s.workoutRepo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("create workout plan: %w", err)
	}
	return plan, nil
}

// AssignDietPlan appends a new diet plan for the member.
func (s *trainerService) AssignDietPlan(ctx context.Context, memberID, trainerID uuid.UUID, dietDetails string) (*model.DietPlan, error) {
	if err := s.checkMember(ctx, memberID); err != nil {
		return nil, err
	}

	plan := &model.DietPlan{
		MemberID:    memberID,
		TrainerID:   trainerID,
		DietDetails: dietDetails,
	}
	if err := s.dietRepo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("create diet plan: %w", err)
	}
	return plan, nil
}

// RecordProgress appends a progress measurement for the member.
func (s *trainerService) RecordProgress(ctx context.Context, memberID, trainerID uuid.UUID, input ProgressInput) (*model.Progress, error) {
	if err := s.checkMember(ctx, memberID); err != nil {
		return nil, err
	}

	progress := &model.Progress{
		MemberID:   memberID,
		TrainerID:  trainerID,
		Weight:     input.Weight,
		BodyFat:    input.BodyFat,
		MuscleMass: input.MuscleMass,
		Notes:      input.Notes,
	}
	if err := s.progressRepo.Create(ctx, progress); err != nil {
		return nil, fmt.Errorf("create progress: %w", err)
	}
	return progress, nil
}

func (s *trainerService) checkMember(ctx context.Context, memberID uuid.UUID) error {
	if _, err := s.memberRepo.FindByID(ctx, memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMemberNotFound
		}
		return fmt.Errorf("find member: %w", err)
	}
	return nil
}
