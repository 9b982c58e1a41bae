package handlers

import (
	"github.com/devashishkr3/vaastman-backend/database"
	"github.com/devashishkr3/vaastman-backend/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CollegeRequest struct {
	Name         string `json:"name" validate:"required,min=3"`
	Address      string `json:"address"`
	CollegeCode  string `json:"collegeCode"`
	UniversityID string `json:"universityId" validate:"required,uuid"`
}

func CreateCollege(c *fiber.Ctx) error {
	var req CollegeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	universityID, err := uuid.Parse(req.UniversityID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid universityId"})
	}

	var university models.University
	if err := database.DB.First(&university, "id = ?", universityID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "University not found"})
	}

	var count int64
	database.DB.Model(&models.College{}).Where("name = ? AND university_id = ?", req.Name, universityID).Count(&count)
	if count > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "College already exists under this university"})
	}

	college := models.College{
		Name:         req.Name,
		Address:      req.Address,
		CollegeCode:  req.CollegeCode,
		UniversityID: universityID,
	}
	if err := database.DB.Create(&college).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to create college"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "College created successfully",
		"data":    college,
	})
}

func GetAllColleges(c *fiber.Ctx) error {
	var colleges []models.College
	if err := database.DB.Preload("University").Order("created_at DESC").Find(&colleges).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Database error"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "All colleges fetched successfully",
		"data":    colleges,
	})
}

func GetCollegeByID(c *fiber.Ctx) error {
	var college models.College
	err := database.DB.Preload("University").Preload("Students").First(&college, "id = ?", c.Params("id")).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "College not found"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "College fetched successfully",
		"data":    college,
	})
}

func UpdateCollege(c *fiber.Ctx) error {
	var college models.College
	if err := database.DB.First(&college, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "College not found"})
	}

	var req CollegeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	universityID, err := uuid.Parse(req.UniversityID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid universityId"})
	}
	var count int64
	database.DB.Model(&models.University{}).Where("id = ?", universityID).Count(&count)
	if count == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid universityId"})
	}

	college.Name = req.Name
	college.Address = req.Address
	college.CollegeCode = req.CollegeCode
	college.UniversityID = universityID
	if err := database.DB.Save(&college).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to update college"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "College updated successfully",
		"data":    college,
	})
}

func DeleteCollege(c *fiber.Ctx) error {
	var college models.College
	if err := database.DB.First(&college, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "College not found"})
	}

	if err := database.DB.Delete(&college).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to delete college"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "College deleted successfully"})
}

func GetStudentsByCollege(c *fiber.Ctx) error {
	var students []models.Student
	err := database.DB.Preload("University").Preload("Certificates").
		Where("college_id = ?", c.Params("id")).Find(&students).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Database error"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Students fetched successfully",
		"data":    students,
	})
}
