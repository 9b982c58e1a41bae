package handlers

import (
	"fmt"

	config "github.com/devashishkr3/vaastman-backend/configs"
	"github.com/devashishkr3/vaastman-backend/notifications"
	"github.com/gofiber/fiber/v2"
)

type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

func SubmitContact(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	go notifications.SendEmail(req.Name, req.Email,
		"Thank you for contacting us",
		fmt.Sprintf("<p>Hi %s,</p><p>Thank you for reaching out to us. We will respond to your query soon.</p><p>Best regards,<br/>Vaastman Solutions Team</p>", req.Name))

	go notifications.SendEmail("Admin", config.Config("ADMIN_EMAIL"),
		"New Contact Us Submission",
		fmt.Sprintf("<p>A new contact submission has been received:</p><ul><li>Name: %s</li><li>Email: %s</li><li>Message: %s</li></ul>", req.Name, req.Email, req.Message))

	return c.JSON(fiber.Map{"success": true, "message": "Contact email sent successfully"})
}

type CareerRequest struct {
	Name       string `json:"name" validate:"required,min=2"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	Domain     string `json:"domain" validate:"required"`
	MotiveType string `json:"motiveType" validate:"required"`
}

func SubmitCareer(c *fiber.Ctx) error {
	var req CareerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	go notifications.SendEmail(req.Name, req.Email,
		"Thank you for your application",
		fmt.Sprintf("<p>Hi %s,</p><p>Thank you for showing interest in our company. We have received your application and will get back to you soon.</p><p>Best regards,<br/>Vaastman Solutions Team</p>", req.Name))

	go notifications.SendEmail("Admin", config.Config("ADMIN_EMAIL"),
		"New Career Application Received",
		fmt.Sprintf("<p>A new career application has been submitted:</p><ul><li>Name: %s</li><li>Email: %s</li><li>Phone: %s</li><li>Motive: %s</li><li>Domain: %s</li></ul>", req.Name, req.Email, req.Phone, req.MotiveType, req.Domain))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Thankyou for your application"})
}
