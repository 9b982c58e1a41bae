package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/devashishkr3/vaastman-backend/models"
	"gorm.io/gorm"
)

// Certificate numbers are sequential per calendar year starting at 10000, so a
// printed number is both unique and roughly tells you when it was issued.
const certSeqFloor = 9999

// NextCertificateNumber reserves the next number for the given year, formatted
// as VS-YYYY-NNNNN. Must be called inside the issuing transaction: the counter
// row is incremented atomically so the reservation is released on rollback.
func NextCertificateNumber(tx *gorm.DB, now time.Time) (string, error) {
	year := now.Year()

	seq := models.CertificateSequence{Year: year, LastSeq: certSeqFloor}
	if err := tx.Where(models.CertificateSequence{Year: year}).FirstOrCreate(&seq).Error; err != nil {
		return "", err
	}

	if err := tx.Model(&models.CertificateSequence{}).
		Where("year = ?", year).
		Update("last_seq", gorm.Expr("last_seq + 1")).Error; err != nil {
		return "", err
	}

	if err := tx.First(&seq, "year = ?", year).Error; err != nil {
		return "", err
	}

	return fmt.Sprintf("VS-%d-%05d", year, seq.LastSeq), nil
}

// NewVerificationToken returns 16 bytes of hex-encoded entropy. This is the
// sole public lookup key for certificate verification and must not be
// derivable from any other certificate field.
func NewVerificationToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
