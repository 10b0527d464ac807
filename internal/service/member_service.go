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

const profileCacheTTL = 2 * time.Minute

// MemberService serves a member's own dashboard data.
type MemberService interface {
	GetProfile(ctx context.Context, memberID uuid.UUID) (*model.Member, error)
	GetWorkoutPlans(ctx context.Context, memberID uuid.UUID) ([]model.WorkoutPlan, error)
	GetDietPlans(ctx context.Context, memberID uuid.UUID) ([]model.DietPlan, error)
	GetAttendance(ctx context.Context, memberID uuid.UUID) ([]model.Attendance, error)
	GetProgress(ctx context.Context, memberID uuid.UUID) ([]model.Progress, error)
}

type memberService struct {
	memberRepo     repository.MemberRepository
	workoutRepo    repository.WorkoutPlanRepository
	dietRepo       repository.DietPlanRepository
	attendanceRepo repository.AttendanceRepository
	progressRepo   repository.ProgressRepository
	cache          Cache
}

// NewMemberService creates a new member service.
func NewMemberService(
	memberRepo repository.MemberRepository,
	workoutRepo repository.WorkoutPlanRepository,
	dietRepo repository.DietPlanRepository,
	attendanceRepo repository.AttendanceRepository,
	progressRepo repository.ProgressRepository,
	cache Cache,
) MemberService {
	return &memberService{
		memberRepo:     memberRepo,
		workoutRepo:    workoutRepo,
		dietRepo:       dietRepo,
		attendanceRepo: attendanceRepo,
		progressRepo:   progressRepo,
		cache:          cache,
	}
}

func profileCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("member:profile:%s", id.String())
}

// GetProfile retrieves a member's profile with caching.
func (s *memberService) GetProfile(ctx context.Context, memberID uuid.UUID) (*model.Member, error) {
	if data, _ := s.cache.Get(ctx, profileCacheKey(memberID)); data != nil {
		var cached model.Member
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("find member: %w", err)
	}

	if payload, err := json.Marshal(member); err == nil {
		_ = s.cache.Set(ctx, profileCacheKey(memberID), payload, profileCacheTTL)
	}

	return member, nil
}

// GetWorkoutPlans returns the member's workout plans, newest first.
func (s *memberService) GetWorkoutPlans(ctx context.Context, memberID uuid.UUID) ([]model.WorkoutPlan, error) {
	plans, err := s.workoutRepo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("list workout plans: %w", err)
	}
	return plans, nil
}

// GetDietPlans returns the member's diet plans, newest first.
func (s *memberService) GetDietPlans(ctx context.Context, memberID uuid.UUID) ([]model.DietPlan, error) {
	plans, err := s.dietRepo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("list diet plans: %w", err)
	}
	return plans, nil
}

// GetAttendance returns the member's attendance history, newest first.
func (s *memberService) GetAttendance(ctx context.Context, memberID uuid.UUID) ([]model.Attendance, error) {
	records, err := s.attendanceRepo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return records, nil
}

// GetProgress returns the member's progress history, newest first.
func (s *memberService) GetProgress(ctx context.Context, memberID uuid.UUID) ([]model.Progress, error) {
	records, err := s.progressRepo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	return records, nil
}
