package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "gymhub/internal/errors"
	"gymhub/internal/model"
)

func TestAttendanceService_Mark(t *testing.T) {
	memberID := uuid.New()
	now := time.Date(2026, 8, 31, 14, 30, 0, 0, time.Local)
	midnight := time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local)
	nextMidnight := midnight.AddDate(0, 0, 1)

	tests := []struct {
		name          string
		status        string
		setupMock     func(*MockMemberRepository, *MockAttendanceRepository)
		expectedError error
	}{
		{
			name:   "successful mark",
			status: model.AttendancePresent,
			setupMock: func(mRepo *MockMemberRepository, aRepo *MockAttendanceRepository) {
				mRepo.On("FindByID", mock.Anything, memberID).Return(&model.Member{ID: memberID}, nil)
				aRepo.On("FindByMemberInWindow", mock.Anything, memberID, midnight, nextMidnight).
					Return(nil, gorm.ErrRecordNotFound)
				aRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Attendance")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:   "member not found",
			status: model.AttendancePresent,
			setupMock: func(mRepo *MockMemberRepository, aRepo *MockAttendanceRepository) {
				mRepo.On("FindByID", mock.Anything, memberID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrMemberNotFound,
		},
		{
			name:   "already marked today",
			status: model.AttendanceAbsent,
			setupMock: func(mRepo *MockMemberRepository, aRepo *MockAttendanceRepository) {
				mRepo.On("FindByID", mock.Anything, memberID).Return(&model.Member{ID: memberID}, nil)
				aRepo.On("FindByMemberInWindow", mock.Anything, memberID, midnight, nextMidnight).
					Return(&model.Attendance{MemberID: memberID, Status: model.AttendancePresent}, nil)
			},
			expectedError: apperrors.ErrDuplicateAttendance,
		},
		{
			name:   "lost race to concurrent mark",
			status: model.AttendancePresent,
			setupMock: func(mRepo *MockMemberRepository, aRepo *MockAttendanceRepository) {
				mRepo.On("FindByID", mock.Anything, memberID).Return(&model.Member{ID: memberID}, nil)
				aRepo.On("FindByMemberInWindow", mock.Anything, memberID, midnight, nextMidnight).
					Return(nil, gorm.ErrRecordNotFound)
				// The window check passed, but the unique index caught the
				// concurrent insert.
				aRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Attendance")).
					Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrDuplicateAttendance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			memberRepo := new(MockMemberRepository)
			attendanceRepo := new(MockAttendanceRepository)
			tt.setupMock(memberRepo, attendanceRepo)

			svc := NewAttendanceService(memberRepo, attendanceRepo).(*attendanceService)
			svc.now = func() time.Time { return now }

			attendance, err := svc.Mark(context.Background(), memberID, tt.status)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, attendance)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, attendance)
				assert.Equal(t, memberID, attendance.MemberID)
				assert.Equal(t, tt.status, attendance.Status)
				assert.Equal(t, now, attendance.Date)
			}

			memberRepo.AssertExpectations(t)
			attendanceRepo.AssertExpectations(t)
		})
	}
}
