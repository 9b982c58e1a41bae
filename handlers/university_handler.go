package handlers

import (
	"github.com/devashishkr3/vaastman-backend/database"
	"github.com/devashishkr3/vaastman-backend/models"
	"github.com/gofiber/fiber/v2"
)

type UniversityRequest struct {
	Name    string `json:"name" validate:"required,min=3"`
	Address string `json:"address"`
}

func CreateUniversity(c *fiber.Ctx) error {
	var req UniversityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	var count int64
	database.DB.Model(&models.University{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "University already exists"})
	}

	university := models.University{Name: req.Name, Address: req.Address}
	if err := database.DB.Create(&university).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to create university"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "University created successfully",
		"data":    university,
	})
}

func GetAllUniversities(c *fiber.Ctx) error {
	var universities []models.University
	if err := database.DB.Order("created_at DESC").Find(&universities).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Database error"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "All universities fetched successfully",
		"data":    universities,
	})
}

func GetUniversityByID(c *fiber.Ctx) error {
	var university models.University
	err := database.DB.Preload("Colleges").Preload("Students").First(&university, "id = ?", c.Params("id")).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "University not found"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "University fetched successfully",
		"data":    university,
	})
}

func UpdateUniversity(c *fiber.Ctx) error {
	var university models.University
	if err := database.DB.First(&university, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "University not found"})
	}

	var req UniversityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	university.Name = req.Name
	university.Address = req.Address
	if err := database.DB.Save(&university).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to update university"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "University updated successfully",
		"data":    university,
	})
}

func DeleteUniversity(c *fiber.Ctx) error {
	var university models.University
	if err := database.DB.First(&university, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "University not found"})
	}

	if err := database.DB.Delete(&university).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to delete university"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "University deleted successfully"})
}

func GetCollegesByUniversity(c *fiber.Ctx) error {
	var colleges []models.College
	if err := database.DB.Where("university_id = ?", c.Params("id")).Find(&colleges).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Database error"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Colleges fetched successfully",
		"data":    colleges,
	})
}

func GetStudentsByUniversity(c *fiber.Ctx) error {
	var students []models.Student
	err := database.DB.Preload("College").Preload("Certificates").
		Where("university_id = ?", c.Params("id")).Find(&students).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Database error"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Students fetched successfully",
		"data":    students,
	})
}
