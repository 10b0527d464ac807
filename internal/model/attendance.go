package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attendance status values.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLeave   = "leave"
)

// Attendance is one member's attendance mark for one calendar day. The
// composite unique index over (member_id, day) is the authoritative guard
// for the once-per-day rule; the service-level window check is only a fast
// path. Records are never mutated after creation.
type Attendance struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	MemberID  uuid.UUID `json:"member_id" gorm:"type:char(36);not null;uniqueIndex:idx_attendance_member_day"`
	Date      time.Time `json:"date" gorm:"not null"`
	Day       time.Time `json:"-" gorm:"type:date;not null;uniqueIndex:idx_attendance_member_day"`
	Status    string    `json:"status" gorm:"size:20;not null"`
	CreatedAt time.Time `json:"created_at"`

	Member *Member `json:"member,omitempty" gorm:"foreignKey:MemberID"`
}

// BeforeCreate sets UUID, stamps the record, and derives the calendar day
// used by the uniqueness constraint.
func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Date.IsZero() {
		a.Date = time.Now()
	}
	y, m, d := a.Date.Date()
	a.Day = time.Date(y, m, d, 0, 0, 0, 0, a.Date.Location())
	return nil
}
