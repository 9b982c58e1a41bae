package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/devashishkr3/vaastman-backend/models"
	"github.com/devashishkr3/vaastman-backend/notifications"
	"github.com/devashishkr3/vaastman-backend/render"
	"github.com/devashishkr3/vaastman-backend/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	companyName      = "Vaastman Solutions Pvt. Ltd."
	authorizedPerson = "Aditya Suman"
	logoURL          = "https://res.cloudinary.com/ddki7crpd/image/upload/v1761202455/WhatsApp_Image_2025-10-22_at_12.58.51_fe1f8f33_vzlz9c.jpg"

	certificatesFolder = "certificates"
	displayDateLayout  = "January 2, 2006"
)

// Rasterizer captures a filled HTML template as a raster image.
type Rasterizer interface {
	Screenshot(ctx context.Context, htmlContent string) ([]byte, error)
}

// Converter wraps a raster image in a single-page PDF.
type Converter interface {
	ImageToPDF(imagePath, pdfPath string) error
}

// ArtifactStore holds finished certificate PDFs at a remote object store.
// Delete must accept an empty public ID as a no-op.
type ArtifactStore interface {
	Upload(ctx context.Context, localPath, folder string) (url, publicID string, err error)
	Delete(ctx context.Context, publicID string) error
}

// Mailer delivers a formatted email with optional file attachments.
type Mailer interface {
	Send(toName, toEmail, subject, htmlContent string, attachments []notifications.Attachment) error
}

// CertificateService sequences the issuance pipeline: student resolution,
// number and token generation, template render, rasterize, PDF conversion,
// content hashing, remote upload, persistence and notification. Every
// collaborator is injected so the pipeline runs against fakes in tests.
type CertificateService struct {
	db        *gorm.DB
	raster    Rasterizer
	converter Converter
	store     ArtifactStore
	mailer    Mailer

	baseURL      string
	templatePath string
	uploadsDir   string
	now          func() time.Time
}

type CertificateServiceConfig struct {
	PublicBaseURL string
	TemplatePath  string
	UploadsDir    string
}

func NewCertificateService(db *gorm.DB, raster Rasterizer, converter Converter, store ArtifactStore, mailer Mailer, cfg CertificateServiceConfig) *CertificateService {
	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = "https://vaastman.com"
	}
	if cfg.TemplatePath == "" {
		cfg.TemplatePath = render.DefaultTemplatePath
	}
	if cfg.UploadsDir == "" {
		cfg.UploadsDir = "uploads"
	}
	return &CertificateService{
		db:           db,
		raster:       raster,
		converter:    converter,
		store:        store,
		mailer:       mailer,
		baseURL:      strings.TrimRight(cfg.PublicBaseURL, "/"),
		templatePath: cfg.TemplatePath,
		uploadsDir:   cfg.UploadsDir,
		now:          time.Now,
	}
}

// CertificatePayload is the issuance request body. Dates arrive as strings and
// are parsed leniently: an unparseable date stores as null rather than failing
// the whole request.
type CertificatePayload struct {
	FullName               string  `json:"fullName"`
	FatherName             string  `json:"fatherName"`
	Gender                 string  `json:"gender"`
	Email                  string  `json:"email"`
	Mobile                 string  `json:"mobile"`
	UniversityEnrollmentNo string  `json:"universityEnrollmentNo"`
	CollegeID              *string `json:"collegeId"`
	UniversityID           *string `json:"universityId"`
	UniversityName         string  `json:"universityName"`
	FieldName              string  `json:"fieldName"`
	InternshipFrom         string  `json:"internshipFrom"`
	InternshipTo           string  `json:"internshipTo"`
	Skills                 string  `json:"skills"`
	IssueDate              string  `json:"issueDate"`
}

type CreateResult struct {
	CertificateID   uuid.UUID `json:"certificateId"`
	CertNumber      string    `json:"certNumber"`
	StudentID       uuid.UUID `json:"studentId"`
	DownloadURL     string    `json:"downloadUrl"`
	VerificationURL string    `json:"verificationUrl"`
}

// Create issues a new certificate end to end. The certificate number is
// reserved up front in its own transaction; a pipeline failure afterwards
// burns the number, which sequential numbering tolerates as a gap.
func (s *CertificateService) Create(ctx context.Context, payload CertificatePayload, issuedByID *uuid.UUID) (*CreateResult, error) {
	if err := validateCreatePayload(payload); err != nil {
		return nil, err
	}

	student, err := s.findOrCreateStudent(ctx, payload)
	if err != nil {
		return nil, err
	}

	var certNumber string
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		certNumber, txErr = utils.NextCertificateNumber(tx, s.now())
		return txErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate certificate number: %w", err)
	}

	verificationHash, err := utils.NewVerificationToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification token: %w", err)
	}
	verificationURL := s.baseURL + "/verify/" + verificationHash

	qrData, err := render.EncodeQRDataURL(verificationURL)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}

	html, err := render.BuildCertificateHTML(s.templatePath, render.CertificateData{
		LogoURL:          logoURL,
		StudentName:      student.FullName,
		UniversityName:   payload.UniversityName,
		FieldName:        payload.FieldName,
		FromDate:         displayDate(safeDate(payload.InternshipFrom)),
		ToDate:           displayDate(safeDate(payload.InternshipTo)),
		CompanyName:      companyName,
		GainedSkills:     payload.Skills,
		AuthorizedPerson: authorizedPerson,
		QRCode:           template.URL(qrData),
		CertificateNo:    certNumber,
		IssueDate:        displayDateOr(safeDate(payload.IssueDate), s.now()),
	})
	if err != nil {
		return nil, err
	}

	pdfPath, pdfSHA256, cleanup, err := s.materialize(ctx, html, certNumber)
	defer cleanup()
	if err != nil {
		return nil, err
	}

	secureURL, publicID, err := s.store.Upload(ctx, pdfPath, certificatesFolder)
	if err != nil {
		return nil, err
	}

	issuedAt := s.now()
	if d := safeDate(payload.IssueDate); d != nil {
		issuedAt = *d
	}

	certificate := models.Certificate{
		CertNumber:       certNumber,
		StudentID:        student.ID,
		IssuedByID:       issuedByID,
		PublicID:         publicID,
		CertificateURL:   secureURL,
		PDFSHA256:        pdfSHA256,
		VerificationHash: verificationHash,
		QRData:           qrData,
		Course:           optional(payload.FieldName),
		InternshipFrom:   safeDate(payload.InternshipFrom),
		InternshipTo:     safeDate(payload.InternshipTo),
		IssuedAt:         issuedAt,
	}
	if err := s.db.WithContext(ctx).Create(&certificate).Error; err != nil {
		return nil, fmt.Errorf("failed to persist certificate: %w", err)
	}

	subject := fmt.Sprintf("🎓 Your Internship Certificate - %s", certNumber)
	body := issuedEmailBody(student.FullName, certNumber, verificationURL)
	attachments := []notifications.Attachment{{Filename: certNumber + ".pdf", Path: pdfPath}}
	if err := s.mailer.Send(student.FullName, student.Email, subject, body, attachments); err != nil {
		return nil, fmt.Errorf("failed to send certificate email: %w", err)
	}

	return &CreateResult{
		CertificateID:   certificate.ID,
		CertNumber:      certNumber,
		StudentID:       student.ID,
		DownloadURL:     secureURL,
		VerificationURL: verificationURL,
	}, nil
}

type UpdateResult struct {
	Certificate models.Certificate `json:"updatedCertificate"`
	Student     models.Student     `json:"updatedStudent"`
}

// Update re-issues the artifact for an existing certificate. The new PDF is
// uploaded and the row persisted before the old object is deleted, so the
// stored reference never points at a missing artifact. CertNumber and
// VerificationHash are preserved across re-issuance.
func (s *CertificateService) Update(ctx context.Context, certNumber string, payload CertificatePayload) (*UpdateResult, error) {
	var existing models.Certificate
	err := s.db.WithContext(ctx).Preload("Student").First(&existing, "cert_number = ?", certNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCertificateNotFound
		}
		return nil, err
	}

	student := existing.Student
	if student == nil {
		return nil, fmt.Errorf("certificate %s has no linked student", certNumber)
	}

	if patched := patchStudent(student, payload); patched {
		if err := s.db.WithContext(ctx).Save(student).Error; err != nil {
			return nil, fmt.Errorf("failed to update student: %w", err)
		}
	}

	course := payload.FieldName
	if course == "" && existing.Course != nil {
		course = *existing.Course
	}
	internshipFrom := coalesceDate(safeDate(payload.InternshipFrom), existing.InternshipFrom)
	internshipTo := coalesceDate(safeDate(payload.InternshipTo), existing.InternshipTo)

	html, err := render.BuildCertificateHTML(s.templatePath, render.CertificateData{
		LogoURL:          logoURL,
		StudentName:      student.FullName,
		UniversityName:   payload.UniversityName,
		FieldName:        course,
		FromDate:         displayDate(internshipFrom),
		ToDate:           displayDate(internshipTo),
		CompanyName:      companyName,
		GainedSkills:     payload.Skills,
		AuthorizedPerson: authorizedPerson,
		QRCode:           template.URL(existing.QRData),
		CertificateNo:    existing.CertNumber,
		IssueDate:        s.now().Format(displayDateLayout),
	})
	if err != nil {
		return nil, err
	}

	pdfPath, pdfSHA256, cleanup, err := s.materialize(ctx, html, existing.CertNumber+"_updated")
	defer cleanup()
	if err != nil {
		return nil, err
	}

	secureURL, publicID, err := s.store.Upload(ctx, pdfPath, certificatesFolder)
	if err != nil {
		return nil, err
	}

	oldPublicID := existing.PublicID

	existing.PublicID = publicID
	existing.CertificateURL = secureURL
	existing.PDFSHA256 = pdfSHA256
	existing.Course = optional(course)
	existing.InternshipFrom = internshipFrom
	existing.InternshipTo = internshipTo
	existing.IssuedAt = s.now()
	if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to persist certificate update: %w", err)
	}

	// Only now is the superseded artifact unreachable; losing the delete is a
	// storage leak, not a correctness problem.
	if oldPublicID != "" && oldPublicID != publicID {
		if err := s.store.Delete(ctx, oldPublicID); err != nil {
			log.Printf("⚠️ Failed to delete old artifact %s for %s: %v", oldPublicID, certNumber, err)
		}
	}

	subject := fmt.Sprintf("📄 Updated Certificate - %s", existing.CertNumber)
	body := reissuedEmailBody(student.FullName, existing.CertNumber)
	attachments := []notifications.Attachment{{Filename: existing.CertNumber + "_updated.pdf", Path: pdfPath}}
	if err := s.mailer.Send(student.FullName, student.Email, subject, body, attachments); err != nil {
		return nil, fmt.Errorf("failed to send re-issuance email: %w", err)
	}

	existing.Student = student
	return &UpdateResult{Certificate: existing, Student: *student}, nil
}

// ToggleRevoke flips the revocation flag. RevokedAt is set exactly when the
// certificate transitions to revoked and cleared on restore. The notification
// is best-effort: a missing student or a mail failure never undoes the toggle.
func (s *CertificateService) ToggleRevoke(ctx context.Context, certNumber string) (*models.Certificate, error) {
	var certificate models.Certificate
	err := s.db.WithContext(ctx).First(&certificate, "cert_number = ?", certNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCertificateNotFound
		}
		return nil, err
	}

	wasRevoked := certificate.Revoked
	certificate.Revoked = !wasRevoked
	if certificate.Revoked {
		now := s.now()
		certificate.RevokedAt = &now
	} else {
		certificate.RevokedAt = nil
	}

	if err := s.db.WithContext(ctx).Save(&certificate).Error; err != nil {
		return nil, fmt.Errorf("failed to update revocation status: %w", err)
	}

	var student models.Student
	if err := s.db.WithContext(ctx).First(&student, "id = ?", certificate.StudentID).Error; err == nil {
		var subject, body string
		if certificate.Revoked {
			subject = fmt.Sprintf("⚠️ Certificate Revoked - %s", certificate.CertNumber)
			body = revokedEmailBody(student.FullName, certificate.CertNumber)
		} else {
			subject = fmt.Sprintf("✅ Certificate Restored - %s", certificate.CertNumber)
			body = restoredEmailBody(student.FullName, certificate.CertNumber)
		}
		if err := s.mailer.Send(student.FullName, student.Email, subject, body, nil); err != nil {
			log.Printf("⚠️ Failed to send revocation notice for %s: %v", certificate.CertNumber, err)
		}
	}

	return &certificate, nil
}

// Delete removes the remote artifact best-effort, then the row. The student
// record is never cascaded.
func (s *CertificateService) Delete(ctx context.Context, certNumber string) error {
	var certificate models.Certificate
	err := s.db.WithContext(ctx).First(&certificate, "cert_number = ?", certNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCertificateNotFound
		}
		return err
	}

	if err := s.store.Delete(ctx, certificate.PublicID); err != nil {
		log.Printf("⚠️ Failed to delete artifact %s for %s: %v", certificate.PublicID, certNumber, err)
	}

	if err := s.db.WithContext(ctx).Delete(&certificate).Error; err != nil {
		return fmt.Errorf("failed to delete certificate: %w", err)
	}
	return nil
}

type VerifyResult struct {
	CertNumber     string     `json:"certNumber"`
	StudentName    string     `json:"studentName"`
	Email          string     `json:"email"`
	Course         *string    `json:"course"`
	InternshipFrom *time.Time `json:"internshipFrom"`
	InternshipTo   *time.Time `json:"internshipTo"`
	IssuedBy       string     `json:"issuedBy"`
	CertificateURL string     `json:"certificateURL"`
	Revoked        bool       `json:"revoked"`
}

// Verify is the public trust check: a pure read keyed only on the
// verification hash. A miss is deliberately worded as a forgery signal.
func (s *CertificateService) Verify(ctx context.Context, hash string) (*VerifyResult, error) {
	var certificate models.Certificate
	err := s.db.WithContext(ctx).
		Preload("Student").
		Preload("IssuedBy").
		First(&certificate, "verification_hash = ?", hash).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCertificate
		}
		return nil, err
	}

	result := &VerifyResult{
		CertNumber:     certificate.CertNumber,
		Course:         certificate.Course,
		InternshipFrom: certificate.InternshipFrom,
		InternshipTo:   certificate.InternshipTo,
		IssuedBy:       "Unknown",
		CertificateURL: certificate.CertificateURL,
		Revoked:        certificate.Revoked,
	}
	if certificate.Student != nil {
		result.StudentName = certificate.Student.FullName
		result.Email = certificate.Student.Email
	}
	if certificate.IssuedBy != nil {
		result.IssuedBy = certificate.IssuedBy.Name
	}
	return result, nil
}

const searchResultLimit = 20

// Search matches a case-insensitive substring against certificate number,
// student name, email and enrollment number, newest first, capped at 20.
func (s *CertificateService) Search(ctx context.Context, query string) ([]models.Certificate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrNoCertificatesFound
	}

	pattern := "%" + strings.ToLower(query) + "%"
	var certificates []models.Certificate
	err := s.db.WithContext(ctx).
		Joins("JOIN students ON students.id = certificates.student_id").
		Where("lower(certificates.cert_number) LIKE ? OR lower(students.full_name) LIKE ? OR lower(students.email) LIKE ? OR lower(students.university_enrollment_no) LIKE ?",
			pattern, pattern, pattern, pattern).
		Order("certificates.created_at DESC").
		Limit(searchResultLimit).
		Preload("Student").
		Preload("IssuedBy").
		Find(&certificates).Error
	if err != nil {
		return nil, err
	}
	if len(certificates) == 0 {
		return nil, ErrNoCertificatesFound
	}
	return certificates, nil
}

/* -------------------- pipeline internals -------------------- */

// materialize runs rasterize → image-to-PDF → hash against a request-scoped
// temp namespace. The returned cleanup func removes whatever temp files exist
// and must be deferred by the caller before checking the error, so a failure
// partway through never leaks files.
func (s *CertificateService) materialize(ctx context.Context, htmlContent, stemBase string) (pdfPath, pdfSHA256 string, cleanup func(), err error) {
	stem := strings.NewReplacer("/", "_", "\\", "_").Replace(stemBase) + "_" + uuid.New().String()[:8]
	imagePath := filepath.Join(s.uploadsDir, stem+".png")
	pdfPath = filepath.Join(s.uploadsDir, stem+".pdf")

	cleanup = func() {
		os.Remove(imagePath)
		os.Remove(pdfPath)
	}

	if err = os.MkdirAll(s.uploadsDir, 0o755); err != nil {
		return "", "", cleanup, fmt.Errorf("failed to create uploads dir: %w", err)
	}

	imageBytes, rerr := s.raster.Screenshot(ctx, htmlContent)
	if rerr != nil {
		return "", "", cleanup, fmt.Errorf("failed to rasterize certificate: %w", rerr)
	}
	if err = os.WriteFile(imagePath, imageBytes, 0o644); err != nil {
		return "", "", cleanup, fmt.Errorf("failed to write certificate image: %w", err)
	}

	if err = s.converter.ImageToPDF(imagePath, pdfPath); err != nil {
		return "", "", cleanup, fmt.Errorf("failed to convert certificate to PDF: %w", err)
	}
	os.Remove(imagePath)

	pdfBytes, rerr := os.ReadFile(pdfPath)
	if rerr != nil {
		return "", "", cleanup, fmt.Errorf("failed to read generated PDF: %w", rerr)
	}
	sum := sha256.Sum256(pdfBytes)

	return pdfPath, hex.EncodeToString(sum[:]), cleanup, nil
}

func (s *CertificateService) findOrCreateStudent(ctx context.Context, payload CertificatePayload) (*models.Student, error) {
	var student models.Student
	err := s.db.WithContext(ctx).First(&student, "email = ?", payload.Email).Error
	if err == nil {
		return &student, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Email is the canonical student key. A different student already holding
	// this enrollment number means the two identity paths disagree; refuse
	// rather than create a duplicate person.
	var clash int64
	if err := s.db.WithContext(ctx).Model(&models.Student{}).
		Where("university_enrollment_no = ?", payload.UniversityEnrollmentNo).
		Count(&clash).Error; err != nil {
		return nil, err
	}
	if clash > 0 {
		return nil, &ConflictError{Message: fmt.Sprintf("enrollment number %s already belongs to another student", payload.UniversityEnrollmentNo)}
	}

	student = models.Student{
		FullName:               payload.FullName,
		FatherName:             payload.FatherName,
		Gender:                 payload.Gender,
		Email:                  payload.Email,
		Mobile:                 optional(payload.Mobile),
		UniversityEnrollmentNo: payload.UniversityEnrollmentNo,
		CollegeID:              parseOptionalUUID(payload.CollegeID),
		UniversityID:           parseOptionalUUID(payload.UniversityID),
	}
	if err := s.db.WithContext(ctx).Create(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Message: "student with this email or enrollment number already exists"}
		}
		return nil, err
	}
	return &student, nil
}

func patchStudent(student *models.Student, payload CertificatePayload) bool {
	patched := false
	if payload.FullName != "" {
		student.FullName = payload.FullName
		patched = true
	}
	if payload.FatherName != "" {
		student.FatherName = payload.FatherName
		patched = true
	}
	if payload.Gender != "" {
		student.Gender = payload.Gender
		patched = true
	}
	if payload.Email != "" {
		student.Email = payload.Email
		patched = true
	}
	if payload.Mobile != "" {
		student.Mobile = optional(payload.Mobile)
		patched = true
	}
	if payload.UniversityEnrollmentNo != "" {
		student.UniversityEnrollmentNo = payload.UniversityEnrollmentNo
		patched = true
	}
	if id := parseOptionalUUID(payload.CollegeID); id != nil {
		student.CollegeID = id
		patched = true
	}
	if id := parseOptionalUUID(payload.UniversityID); id != nil {
		student.UniversityID = id
		patched = true
	}
	return patched
}

func validateCreatePayload(payload CertificatePayload) error {
	required := []struct {
		field string
		value string
	}{
		{"fullName", payload.FullName},
		{"fatherName", payload.FatherName},
		{"gender", payload.Gender},
		{"email", payload.Email},
		{"universityEnrollmentNo", payload.UniversityEnrollmentNo},
		{"fieldName", payload.FieldName},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field}
		}
	}

	switch payload.Gender {
	case "MALE", "FEMALE", "OTHER":
	default:
		return &ValidationError{Field: "gender", Message: "gender must be one of MALE, FEMALE, or OTHER"}
	}
	return nil
}

/* -------------------- small helpers -------------------- */

var dateLayouts = []string{time.RFC3339, "2006-01-02", "02/01/2006"}

func safeDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, value); err == nil {
			return &d
		}
	}
	return nil
}

func displayDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format(displayDateLayout)
}

func displayDateOr(d *time.Time, fallback time.Time) string {
	if d == nil {
		return fallback.Format(displayDateLayout)
	}
	return d.Format(displayDateLayout)
}

func coalesceDate(a, b *time.Time) *time.Time {
	if a != nil {
		return a
	}
	return b
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func parseOptionalUUID(value *string) *uuid.UUID {
	if value == nil || *value == "" {
		return nil
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		return nil
	}
	return &id
}
