package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Progress is one body-measurement snapshot recorded by a trainer.
type Progress struct {
	ID         uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	MemberID   uuid.UUID `json:"member_id" gorm:"type:char(36);not null;index"`
	TrainerID  uuid.UUID `json:"trainer_id" gorm:"type:char(36);not null;index"`
	Weight     float64   `json:"weight" gorm:"not null"`
	BodyFat    float64   `json:"body_fat" gorm:"not null"`
	MuscleMass float64   `json:"muscle_mass" gorm:"not null"`
	Notes      string    `json:"notes" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Member  *Member  `json:"member,omitempty" gorm:"foreignKey:MemberID"`
	Trainer *Trainer `json:"trainer,omitempty" gorm:"foreignKey:TrainerID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Progress) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
