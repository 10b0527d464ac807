package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymhub/internal/model"
)

// AttendanceRepository defines attendance persistence operations.
type AttendanceRepository interface {
	Create(ctx context.Context, attendance *model.Attendance) error
	FindByMemberInWindow(ctx context.Context, memberID uuid.UUID, from, to time.Time) (*model.Attendance, error)
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]model.Attendance, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository.
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create creates a new attendance record. The (member_id, day) unique index
// rejects a second record for the same member on the same calendar day with
// gorm.ErrDuplicatedKey.
func (r *attendanceRepository) Create(ctx context.Context, attendance *model.Attendance) error {
	return r.db.WithContext(ctx).Create(attendance).Error
}

// FindByMemberInWindow returns the member's attendance record whose date
// falls within [from, to), if any.
func (r *attendanceRepository) FindByMemberInWindow(ctx context.Context, memberID uuid.UUID, from, to time.Time) (*model.Attendance, error) {
	var attendance model.Attendance
	err := r.db.WithContext(ctx).
		Where("member_id = ? AND date >= ? AND date < ?", memberID, from, to).
		First(&attendance).Error
	if err != nil {
		return nil, err
	}
	return &attendance, nil
}

// ListByMember returns the member's attendance history, newest first.
func (r *attendanceRepository) ListByMember(ctx context.Context, memberID uuid.UUID) ([]model.Attendance, error) {
	var records []model.Attendance
	if err := r.db.WithContext(ctx).Where("member_id = ?", memberID).Order("date DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
