package handlers

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/devashishkr3/vaastman-backend/database"
	"github.com/devashishkr3/vaastman-backend/models"
	"github.com/gofiber/fiber/v2"
)

var downloadClient = &http.Client{Timeout: 30 * time.Second}

func DownloadAllCertificates(c *fiber.Ctx) error {
	var certificates []models.Certificate
	if err := database.DB.Preload("Student").Find(&certificates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Database error"})
	}
	return streamCertificateZip(c, certificates, "all_certificates.zip")
}

func DownloadCertificatesByCollege(c *fiber.Ctx) error {
	collegeID := c.Params("collegeId")

	var certificates []models.Certificate
	err := database.DB.Preload("Student").
		Joins("JOIN students ON students.id = certificates.student_id").
		Where("students.college_id = ?", collegeID).
		Find(&certificates).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Database error"})
	}
	if len(certificates) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "No certificates found for this college"})
	}
	return streamCertificateZip(c, certificates, fmt.Sprintf("college_%s_certificates.zip", collegeID))
}

func DownloadCertificatesByUniversity(c *fiber.Ctx) error {
	universityID := c.Params("universityId")

	var certificates []models.Certificate
	err := database.DB.Preload("Student").
		Joins("JOIN students ON students.id = certificates.student_id").
		Where("students.university_id = ?", universityID).
		Find(&certificates).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Database error"})
	}
	if len(certificates) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "No certificates found for this university"})
	}
	return streamCertificateZip(c, certificates, fmt.Sprintf("university_%s_certificates.zip", universityID))
}

// streamCertificateZip fetches each stored artifact into a temp dir, zips the
// lot in memory and streams the archive. The temp dir is removed on every
// exit path.
func streamCertificateZip(c *fiber.Ctx, certificates []models.Certificate, zipName string) error {
	if len(certificates) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "No certificates found"})
	}

	tempDir, err := os.MkdirTemp("", "certificates_zip_")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to prepare download"})
	}
	defer os.RemoveAll(tempDir)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, cert := range certificates {
		if cert.CertificateURL == "" {
			continue
		}

		studentName := "Unknown"
		if cert.Student != nil {
			studentName = cert.Student.FullName
		}
		safeName := fmt.Sprintf("%s_%s.pdf",
			strings.NewReplacer("/", "_", "\\", "_").Replace(cert.CertNumber), studentName)

		localPath := filepath.Join(tempDir, safeName)
		if err := downloadFile(cert.CertificateURL, localPath); err != nil {
			zw.Close()
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch certificate artifact"})
		}

		data, err := os.ReadFile(localPath)
		if err != nil {
			zw.Close()
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to read certificate artifact"})
		}
		entry, err := zw.Create(safeName)
		if err != nil {
			zw.Close()
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to build archive"})
		}
		if _, err := entry.Write(data); err != nil {
			zw.Close()
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to build archive"})
		}
	}
	if err := zw.Close(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to build archive"})
	}

	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, zipName))
	return c.Send(buf.Bytes())
}

func downloadFile(url, outputPath string) error {
	resp, err := downloadClient.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, url)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}
