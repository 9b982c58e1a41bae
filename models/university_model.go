package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type University struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name    string    `gorm:"size:255;not null;unique" json:"name"`
	Address string    `gorm:"type:text" json:"address"`

	Colleges []College `gorm:"foreignkey:UniversityID" json:"colleges,omitempty"`
	Students []Student `gorm:"foreignkey:UniversityID" json:"students,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *University) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
