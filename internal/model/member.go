package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Member status values. Status gates login: inactive members authenticate
// with valid credentials but are refused.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Member represents a gym member account.
type Member struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Age          int       `json:"age" gorm:"not null"`
	Gender       string    `json:"gender" gorm:"size:50;not null"`
	Phone        string    `json:"phone" gorm:"size:50;not null"`
	JoinDate     time.Time `json:"join_date" gorm:"not null"`
	Status       string    `json:"status" gorm:"size:20;default:'active';index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID and join date before creating the record.
func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.JoinDate.IsZero() {
		m.JoinDate = time.Now()
	}
	return nil
}
