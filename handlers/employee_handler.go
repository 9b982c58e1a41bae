package handlers

import (
	"github.com/devashishkr3/vaastman-backend/database"
	"github.com/devashishkr3/vaastman-backend/models"
	"github.com/gofiber/fiber/v2"
)

func EmployeeDashboard(c *fiber.Ctx) error {
	employeeID := currentUserID(c)
	if employeeID == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	var certificatesIssued, totalStudents int64
	database.DB.Model(&models.Certificate{}).Where("issued_by_id = ?", employeeID).Count(&certificatesIssued)
	database.DB.Model(&models.Student{}).Count(&totalStudents)

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"certificatesIssued": certificatesIssued,
			"totalStudents":      totalStudents,
		},
	})
}
