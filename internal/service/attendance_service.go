package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "gymhub/internal/errors"
	"gymhub/internal/model"
	"gymhub/internal/repository"
)

// AttendanceService marks member attendance, at most once per member per
// calendar day.
type AttendanceService interface {
	Mark(ctx context.Context, memberID uuid.UUID, status string) (*model.Attendance, error)
}

type attendanceService struct {
	memberRepo     repository.MemberRepository
	attendanceRepo repository.AttendanceRepository
	now            func() time.Time
}

// NewAttendanceService creates a new attendance service.
func NewAttendanceService(memberRepo repository.MemberRepository, attendanceRepo repository.AttendanceRepository) AttendanceService {
	return &attendanceService{
		memberRepo:     memberRepo,
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// Mark records attendance for the member for today. The window query is a
// fast path only; the (member_id, day) unique index is what keeps two
// concurrent calls from both succeeding.
func (s *attendanceService) Mark(ctx context.Context, memberID uuid.UUID, status string) (*model.Attendance, error) {
	if _, err := s.memberRepo.FindByID(ctx, memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("find member: %w", err)
	}

	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	nextMidnight := midnight.AddDate(0, 0, 1)

	existing, err := s.attendanceRepo.FindByMemberInWindow(ctx, memberID, midnight, nextMidnight)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing attendance: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateAttendance
	}

	attendance := &model.Attendance{
		MemberID: memberID,
		Date:     now,
		Status:   status,
	}
	if err := s.attendanceRepo.Create(ctx, attendance); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race to a concurrent mark for the same day.
			return nil, apperrors.ErrDuplicateAttendance
		}
		return nil, fmt.Errorf("create attendance: %w", err)
	}

	return attendance, nil
}
