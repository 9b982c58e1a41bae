package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlacklistedToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Token     string    `gorm:"type:text;not null;uniqueIndex:idx_blacklisted_token" json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

func (b *BlacklistedToken) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
