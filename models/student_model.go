package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Student struct {
	ID                     uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	FullName               string     `gorm:"size:255;not null" json:"full_name"`
	FatherName             string     `gorm:"size:255;not null" json:"father_name"`
	Gender                 string     `gorm:"size:10;not null" json:"gender"`
	Email                  string     `gorm:"size:255;not null;unique" json:"email"`
	Mobile                 *string    `gorm:"size:15" json:"mobile"`
	UniversityEnrollmentNo string     `gorm:"size:100;not null;unique" json:"university_enrollment_no"`
	CollegeID              *uuid.UUID `gorm:"type:uuid" json:"college_id"`
	UniversityID           *uuid.UUID `gorm:"type:uuid" json:"university_id"`

	College      *College      `gorm:"foreignkey:CollegeID" json:"college,omitempty"`
	University   *University   `gorm:"foreignkey:UniversityID" json:"university,omitempty"`
	Certificates []Certificate `gorm:"foreignkey:StudentID" json:"certificates,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
