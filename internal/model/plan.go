package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkoutPlan is a trainer-assigned workout for a member. Assignments append
// rather than overwrite, so a member's plan history is preserved.
type WorkoutPlan struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	MemberID    uuid.UUID `json:"member_id" gorm:"type:char(36);not null;index"`
	TrainerID   uuid.UUID `json:"trainer_id" gorm:"type:char(36);not null;index"`
	PlanDetails string    `json:"plan_details" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Member  *Member  `json:"member,omitempty" gorm:"foreignKey:MemberID"`
	Trainer *Trainer `json:"trainer,omitempty" gorm:"foreignKey:TrainerID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *WorkoutPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// DietPlan is a trainer-assigned diet for a member, appended per assignment
// like WorkoutPlan.
type DietPlan struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	MemberID    uuid.UUID `json:"member_id" gorm:"type:char(36);not null;index"`
	TrainerID   uuid.UUID `json:"trainer_id" gorm:"type:char(36);not null;index"`
	DietDetails string    `json:"diet_details" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Member  *Member  `json:"member,omitempty" gorm:"foreignKey:MemberID"`
	Trainer *Trainer `json:"trainer,omitempty" gorm:"foreignKey:TrainerID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *DietPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
