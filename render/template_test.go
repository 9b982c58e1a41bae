package render

import (
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildCertificateHTMLSubstitutesFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cert.html")
	tmpl := `<h1>{{.StudentName}}</h1><p>{{.FieldName}} at {{.CompanyName}}</p><img src="{{.QRCode}}"/><span>{{.CertificateNo}}</span>`
	require.NoError(t, os.WriteFile(path, []byte(tmpl), 0o644))

	html, err := BuildCertificateHTML(path, CertificateData{
		StudentName:   "Asha Singh",
		FieldName:     "Data Science",
		CompanyName:   "Vaastman Solutions Pvt. Ltd.",
		QRCode:        template.URL("data:image/png;base64,AAAA"),
		CertificateNo: "VS-2026-10000",
	})
	require.NoError(t, err)
	require.Contains(t, html, "<h1>Asha Singh</h1>")
	require.Contains(t, html, "Data Science at Vaastman Solutions Pvt. Ltd.")
	require.Contains(t, html, `src="data:image/png;base64,AAAA"`)
	require.Contains(t, html, "VS-2026-10000")
}

func TestBuildCertificateHTMLEscapesStudentInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cert.html")
	require.NoError(t, os.WriteFile(path, []byte(`<h1>{{.StudentName}}</h1>`), 0o644))

	html, err := BuildCertificateHTML(path, CertificateData{StudentName: "<script>alert(1)</script>"})
	require.NoError(t, err)
	require.NotContains(t, html, "<script>")
}

func TestBuildCertificateHTMLMissingTemplate(t *testing.T) {
	_, err := BuildCertificateHTML(filepath.Join(t.TempDir(), "missing.html"), CertificateData{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "certificate template not found")
}

func TestShippedTemplateParses(t *testing.T) {
	path := filepath.Join("..", "templates", "internship_certificate.html")
	if _, err := os.Stat(path); err != nil {
		t.Skip("template not present in this checkout")
	}

	html, err := BuildCertificateHTML(path, CertificateData{
		StudentName:   "Asha Singh",
		CertificateNo: "VS-2026-10000",
	})
	require.NoError(t, err)
	require.Contains(t, html, "Asha Singh")
}

func TestEncodeQRDataURL(t *testing.T) {
	dataURL, err := EncodeQRDataURL("https://vaastman.com/verify/abc123")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(dataURL, "data:image/png;base64,"))
	require.Greater(t, len(dataURL), 100)
}
