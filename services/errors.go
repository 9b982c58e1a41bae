package services

import "errors"

// Sentinel errors map to 404 at the handler layer. The verification miss gets
// its own sentinel because the public endpoint words it as a trust signal, not
// a plain lookup failure.
var (
	ErrCertificateNotFound = errors.New("Certificate not found")
	ErrInvalidCertificate  = errors.New("Invalid or fake certificate")
	ErrNoCertificatesFound = errors.New("No certificates found")
)

// ValidationError reports a missing or malformed request field (400).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Field + " is required"
}

// ConflictError reports a unique-key clash, e.g. an enrollment number already
// belonging to a different student (400).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}
