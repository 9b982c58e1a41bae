package handlers

import (
	"errors"
	"log"

	"github.com/devashishkr3/vaastman-backend/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// CertSvc is wired in main once the DB and external clients exist, mirroring
// how the email client is initialized.
var CertSvc *services.CertificateService

func InitCertificateHandlers(svc *services.CertificateService) {
	CertSvc = svc
}

func CreateCertificate(c *fiber.Ctx) error {
	var payload services.CertificatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}

	result, err := CertSvc.Create(c.UserContext(), payload, currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Certificate generated successfully",
		"data":    result,
	})
}

func UpdateCertificate(c *fiber.Ctx) error {
	certNumber := c.Params("certNumber")

	var payload services.CertificatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}

	result, err := CertSvc.Update(c.UserContext(), certNumber, payload)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Certificate and student record updated successfully",
		"data":    result,
	})
}

func ToggleRevokeCertificate(c *fiber.Ctx) error {
	certNumber := c.Params("certNumber")

	certificate, err := CertSvc.ToggleRevoke(c.UserContext(), certNumber)
	if err != nil {
		return respondServiceError(c, err)
	}

	message := "Certificate un-revoked successfully"
	if certificate.Revoked {
		message = "Certificate revoked successfully"
	}
	return c.JSON(fiber.Map{"success": true, "message": message, "data": certificate})
}

func DeleteCertificate(c *fiber.Ctx) error {
	certNumber := c.Params("certNumber")

	if err := CertSvc.Delete(c.UserContext(), certNumber); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Certificate deleted successfully"})
}

func VerifyCertificate(c *fiber.Ctx) error {
	hash := c.Params("hash")

	result, err := CertSvc.Verify(c.UserContext(), hash)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Certificate is valid", "data": result})
}

func SearchCertificates(c *fiber.Ctx) error {
	certificates, err := CertSvc.Search(c.UserContext(), c.Query("q"))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Certificates fetched successfully", "data": certificates})
}

func respondServiceError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	var conflictErr *services.ConflictError
	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": validationErr.Error()})
	case errors.As(err, &conflictErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": conflictErr.Error()})
	case errors.Is(err, services.ErrCertificateNotFound),
		errors.Is(err, services.ErrInvalidCertificate),
		errors.Is(err, services.ErrNoCertificatesFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": err.Error()})
	default:
		log.Printf("🔥 Certificate operation failed: %v | Path: %s", err, c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Something went wrong"})
	}
}

func currentUserID(c *fiber.Ctx) *uuid.UUID {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	idStr, _ := claims["id"].(string)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil
	}
	return &id
}
