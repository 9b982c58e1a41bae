package models

// CertificateSequence backs the per-year certificate counter. One row per
// calendar year; LastSeq is incremented inside the issuing transaction so two
// concurrent issuances can never observe the same value.
type CertificateSequence struct {
	Year    int `gorm:"primary_key;autoIncrement:false" json:"year"`
	LastSeq int `gorm:"not null;default:0" json:"last_seq"`
}
