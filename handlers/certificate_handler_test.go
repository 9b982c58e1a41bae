package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/devashishkr3/vaastman-backend/models"
	"github.com/devashishkr3/vaastman-backend/notifications"
	"github.com/devashishkr3/vaastman-backend/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type stubRasterizer struct{}

func (stubRasterizer) Screenshot(ctx context.Context, htmlContent string) ([]byte, error) {
	return []byte(htmlContent), nil
}

type stubConverter struct{}

func (stubConverter) ImageToPDF(imagePath, pdfPath string) error {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return err
	}
	return os.WriteFile(pdfPath, append([]byte("%PDF-"), data...), 0o644)
}

type stubStore struct{ uploads int }

func (s *stubStore) Upload(ctx context.Context, localPath, folder string) (string, string, error) {
	s.uploads++
	publicID := fmt.Sprintf("%s/stub-%d", folder, s.uploads)
	return "https://cdn.example.com/" + publicID + ".pdf", publicID, nil
}

func (s *stubStore) Delete(ctx context.Context, publicID string) error { return nil }

type stubMailer struct{ sent int }

func (m *stubMailer) Send(toName, toEmail, subject, htmlContent string, attachments []notifications.Attachment) error {
	m.sent++
	return nil
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.University{},
		&models.College{},
		&models.Student{},
		&models.Certificate{},
		&models.CertificateSequence{},
	))

	dir := t.TempDir()
	templatePath := filepath.Join(dir, "cert.html")
	require.NoError(t, os.WriteFile(templatePath, []byte(`<p>{{.StudentName}} {{.CertificateNo}}</p>`), 0o644))

	svc := services.NewCertificateService(db, stubRasterizer{}, stubConverter{}, &stubStore{}, &stubMailer{}, services.CertificateServiceConfig{
		TemplatePath: templatePath,
		UploadsDir:   filepath.Join(dir, "uploads"),
	})
	InitCertificateHandlers(svc)

	app := fiber.New()
	app.Post("/api/v1/certificates", CreateCertificate)
	app.Put("/api/v1/certificates/:certNumber", UpdateCertificate)
	app.Patch("/api/v1/certificates/:certNumber/revoke", ToggleRevokeCertificate)
	app.Delete("/api/v1/certificates/:certNumber", DeleteCertificate)
	app.Get("/api/v1/verify/:hash", VerifyCertificate)
	app.Get("/api/v1/certificates/search", SearchCertificates)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func createBody() map[string]any {
	return map[string]any{
		"fullName":               "Asha Singh",
		"fatherName":             "Ram Singh",
		"gender":                 "FEMALE",
		"email":                  "asha@example.com",
		"universityEnrollmentNo": "U123",
		"fieldName":              "Data Science",
	}
}

func TestCreateCertificateEndpoint(t *testing.T) {
	app := setupApp(t)

	status, env := doJSON(t, app, http.MethodPost, "/api/v1/certificates", createBody())
	require.Equal(t, fiber.StatusCreated, status)
	require.True(t, env.Success)
	require.Equal(t, "Certificate generated successfully", env.Message)

	var data struct {
		CertNumber      string `json:"certNumber"`
		VerificationURL string `json:"verificationUrl"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Regexp(t, `^VS-\d{4}-\d{5}$`, data.CertNumber)
	require.NotEmpty(t, data.VerificationURL)
}

func TestCreateCertificateValidationFailure(t *testing.T) {
	app := setupApp(t)

	body := createBody()
	delete(body, "gender")

	status, env := doJSON(t, app, http.MethodPost, "/api/v1/certificates", body)
	require.Equal(t, fiber.StatusBadRequest, status)
	require.False(t, env.Success)
	require.Equal(t, "gender is required", env.Message)
}

func TestVerifyEndpointRoundTrip(t *testing.T) {
	app := setupApp(t)

	_, env := doJSON(t, app, http.MethodPost, "/api/v1/certificates", createBody())
	var created struct {
		VerificationURL string `json:"verificationUrl"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	hash := created.VerificationURL[strings.LastIndex(created.VerificationURL, "/")+1:]

	status, env := doJSON(t, app, http.MethodGet, "/api/v1/verify/"+hash, nil)
	require.Equal(t, fiber.StatusOK, status)
	require.True(t, env.Success)
	require.Equal(t, "Certificate is valid", env.Message)

	var data struct {
		StudentName string `json:"studentName"`
		Revoked     bool   `json:"revoked"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Equal(t, "Asha Singh", data.StudentName)
	require.False(t, data.Revoked)
}

func TestVerifyEndpointUnknownHash(t *testing.T) {
	app := setupApp(t)

	status, env := doJSON(t, app, http.MethodGet, "/api/v1/verify/0000000000000000000000000000dead", nil)
	require.Equal(t, fiber.StatusNotFound, status)
	require.False(t, env.Success)
	require.Equal(t, "Invalid or fake certificate", env.Message)
}

func TestToggleRevokeEndpoint(t *testing.T) {
	app := setupApp(t)

	_, env := doJSON(t, app, http.MethodPost, "/api/v1/certificates", createBody())
	var created struct {
		CertNumber string `json:"certNumber"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	status, env := doJSON(t, app, http.MethodPatch, "/api/v1/certificates/"+created.CertNumber+"/revoke", nil)
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "Certificate revoked successfully", env.Message)

	status, env = doJSON(t, app, http.MethodPatch, "/api/v1/certificates/"+created.CertNumber+"/revoke", nil)
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "Certificate un-revoked successfully", env.Message)
}

func TestDeleteEndpointUnknownCertificate(t *testing.T) {
	app := setupApp(t)

	status, env := doJSON(t, app, http.MethodDelete, "/api/v1/certificates/VS-2026-99999", nil)
	require.Equal(t, fiber.StatusNotFound, status)
	require.Equal(t, "Certificate not found", env.Message)
}

func TestSearchEndpoint(t *testing.T) {
	app := setupApp(t)

	_, _ = doJSON(t, app, http.MethodPost, "/api/v1/certificates", createBody())

	status, env := doJSON(t, app, http.MethodGet, "/api/v1/certificates/search?q=asha", nil)
	require.Equal(t, fiber.StatusOK, status)
	require.True(t, env.Success)

	var results []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &results))
	require.Len(t, results, 1)

	status, env = doJSON(t, app, http.MethodGet, "/api/v1/certificates/search?q=nomatch", nil)
	require.Equal(t, fiber.StatusNotFound, status)
	require.Equal(t, "No certificates found", env.Message)
}
