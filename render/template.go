package render

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
)

const DefaultTemplatePath = "templates/internship_certificate.html"

// CertificateData carries every field the certificate template knows about.
// Empty strings render as blanks, matching the printed layout.
type CertificateData struct {
	LogoURL          string
	StudentName      string
	UniversityName   string
	FieldName        string
	FromDate         string
	ToDate           string
	CompanyName      string
	GainedSkills     string
	AuthorizedPerson string
	QRCode           template.URL
	CertificateNo    string
	IssueDate        string
}

func BuildCertificateHTML(templatePath string, data CertificateData) (string, error) {
	if templatePath == "" {
		templatePath = DefaultTemplatePath
	}
	if _, err := os.Stat(templatePath); err != nil {
		return "", fmt.Errorf("certificate template not found at %s: %w", templatePath, err)
	}

	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
