package utils

import (
	"fmt"
	"testing"
	"time"

	"github.com/devashishkr3/vaastman-backend/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openSequenceDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.CertificateSequence{}))
	return db
}

func TestNextCertificateNumberFormat(t *testing.T) {
	db := openSequenceDB(t)

	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	number, err := NextCertificateNumber(db, now)
	require.NoError(t, err)
	require.Equal(t, "VS-2026-10000", number)
}

func TestNextCertificateNumberIsMonotonic(t *testing.T) {
	db := openSequenceDB(t)

	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	seen := map[string]bool{}
	prev := ""
	for i := 0; i < 5; i++ {
		number, err := NextCertificateNumber(db, now)
		require.NoError(t, err)
		require.False(t, seen[number], "numbers must never repeat")
		require.Greater(t, number, prev)
		seen[number] = true
		prev = number
	}
}

func TestNextCertificateNumberResetsPerYear(t *testing.T) {
	db := openSequenceDB(t)

	first, err := NextCertificateNumber(db, time.Date(2026, time.December, 31, 23, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, "VS-2026-10000", first)

	nextYear, err := NextCertificateNumber(db, time.Date(2027, time.January, 1, 1, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, "VS-2027-10000", nextYear)
}

func TestNewVerificationToken(t *testing.T) {
	first, err := NewVerificationToken()
	require.NoError(t, err)
	require.Len(t, first, 32)
	require.Regexp(t, "^[0-9a-f]{32}$", first)

	second, err := NewVerificationToken()
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}
