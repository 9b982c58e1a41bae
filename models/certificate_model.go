package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Certificate is the metadata record of an issued artifact. The rendered PDF
// itself lives at the object store under PublicID; VerificationHash is the only
// lookup key exposed to the public verification endpoint and never changes once
// set, even when the artifact is re-issued.
type Certificate struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CertNumber string     `gorm:"size:50;not null;unique" json:"cert_number"`
	StudentID  uuid.UUID  `gorm:"type:uuid;not null" json:"student_id"`
	IssuedByID *uuid.UUID `gorm:"type:uuid" json:"issued_by_id"`

	PublicID         string `gorm:"size:255" json:"public_id"`
	CertificateURL   string `gorm:"type:text" json:"certificate_url"`
	PDFSHA256        string `gorm:"size:64" json:"pdf_sha256"`
	VerificationHash string `gorm:"size:64;not null;unique" json:"verification_hash"`
	QRData           string `gorm:"type:text" json:"-"`

	Course         *string    `gorm:"size:255" json:"course"`
	InternshipFrom *time.Time `json:"internship_from"`
	InternshipTo   *time.Time `json:"internship_to"`
	IssuedAt       time.Time  `json:"issued_at"`

	Revoked   bool       `gorm:"default:false" json:"revoked"`
	RevokedAt *time.Time `json:"revoked_at"`

	Student  *Student `gorm:"foreignkey:StudentID" json:"student,omitempty"`
	IssuedBy *User    `gorm:"foreignkey:IssuedByID" json:"issued_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Certificate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
