package handlers

import (
	"github.com/devashishkr3/vaastman-backend/database"
	"github.com/devashishkr3/vaastman-backend/models"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func AdminDashboard(c *fiber.Ctx) error {
	var totalEmployees, totalUniversities, totalColleges, totalStudents, totalCertificates int64

	database.DB.Model(&models.User{}).Where("role = ?", "EMPLOYEE").Count(&totalEmployees)
	database.DB.Model(&models.University{}).Count(&totalUniversities)
	database.DB.Model(&models.College{}).Count(&totalColleges)
	database.DB.Model(&models.Student{}).Count(&totalStudents)
	database.DB.Model(&models.Certificate{}).Count(&totalCertificates)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Admin dashboard data fetched successfully",
		"data": fiber.Map{
			"totalEmployees":    totalEmployees,
			"totalUniversities": totalUniversities,
			"totalColleges":     totalColleges,
			"totalStudents":     totalStudents,
			"totalCertificates": totalCertificates,
		},
	})
}

type EmployeeRequest struct {
	Name     string  `json:"name" validate:"required,min=3"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"omitempty,min=6"`
	Mobile   *string `json:"mobile,omitempty"`
}

func CreateEmployee(c *fiber.Ctx) error {
	var req EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	if req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "password is required"})
	}

	var count int64
	database.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Employee already exists"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to hash password"})
	}

	employee := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Mobile:   req.Mobile,
		Role:     "EMPLOYEE",
	}
	if err := database.DB.Create(&employee).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to create employee"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Employee created successfully",
		"data":    employee,
	})
}

func GetAllEmployees(c *fiber.Ctx) error {
	var employees []models.User
	if err := database.DB.Where("role = ?", "EMPLOYEE").Order("created_at DESC").Find(&employees).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Database error"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "All employees fetched successfully",
		"data":    employees,
	})
}

func GetEmployeeByID(c *fiber.Ctx) error {
	var employee models.User
	if err := database.DB.First(&employee, "id = ? AND role = ?", c.Params("id"), "EMPLOYEE").Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Employee not found"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Employee fetched successfully",
		"data":    employee,
	})
}

func UpdateEmployee(c *fiber.Ctx) error {
	var employee models.User
	if err := database.DB.First(&employee, "id = ? AND role = ?", c.Params("id"), "EMPLOYEE").Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Employee not found"})
	}

	var req EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	employee.Name = req.Name
	employee.Email = req.Email
	if req.Mobile != nil {
		employee.Mobile = req.Mobile
	}
	if err := database.DB.Save(&employee).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to update employee"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Employee updated successfully",
		"data":    employee,
	})
}

func ToggleActiveEmployee(c *fiber.Ctx) error {
	var employee models.User
	if err := database.DB.First(&employee, "id = ? AND role = ?", c.Params("id"), "EMPLOYEE").Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Employee not found"})
	}

	employee.IsActive = !employee.IsActive
	if err := database.DB.Save(&employee).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to update employee"})
	}

	message := "Employee Deactivated successfully"
	if employee.IsActive {
		message = "Employee Activated successfully"
	}
	return c.JSON(fiber.Map{"success": true, "message": message, "data": employee})
}

func DeleteEmployee(c *fiber.Ctx) error {
	var employee models.User
	if err := database.DB.First(&employee, "id = ? AND role = ?", c.Params("id"), "EMPLOYEE").Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Employee not found"})
	}

	if err := database.DB.Delete(&employee).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to delete employee"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Employee deleted successfully"})
}
