package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type College struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Address      string    `gorm:"type:text" json:"address"`
	CollegeCode  string    `gorm:"size:50" json:"college_code"`
	UniversityID uuid.UUID `gorm:"type:uuid;not null" json:"university_id"`

	University *University `gorm:"foreignkey:UniversityID" json:"university,omitempty"`
	Students   []Student   `gorm:"foreignkey:CollegeID" json:"students,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *College) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
