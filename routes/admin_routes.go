package routes

import (
	"github.com/devashishkr3/vaastman-backend/handlers"
	"github.com/devashishkr3/vaastman-backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/dashboard", handlers.AdminDashboard)

	employees := admin.Group("/employees")
	employees.Post("", handlers.CreateEmployee)
	employees.Get("", handlers.GetAllEmployees)
	employees.Get("/:id", handlers.GetEmployeeByID)
	employees.Put("/:id", handlers.UpdateEmployee)
	employees.Patch("/:id/toggle", handlers.ToggleActiveEmployee)
	employees.Delete("/:id", handlers.DeleteEmployee)

	university := admin.Group("/university")
	university.Post("", handlers.CreateUniversity)
	university.Get("", handlers.GetAllUniversities)
	university.Get("/:id", handlers.GetUniversityByID)
	university.Put("/:id", handlers.UpdateUniversity)
	university.Delete("/:id", handlers.DeleteUniversity)
	university.Get("/:id/colleges", handlers.GetCollegesByUniversity)
	university.Get("/:id/students", handlers.GetStudentsByUniversity)

	college := admin.Group("/college")
	college.Post("", handlers.CreateCollege)
	college.Get("", handlers.GetAllColleges)
	college.Get("/:id", handlers.GetCollegeByID)
	college.Put("/:id", handlers.UpdateCollege)
	college.Delete("/:id", handlers.DeleteCollege)
	college.Get("/:id/students", handlers.GetStudentsByCollege)

	certificates := admin.Group("/certificates")
	certificates.Post("/create", handlers.CreateCertificate)
	certificates.Get("/search", handlers.SearchCertificates)
	certificates.Get("/download/all", handlers.DownloadAllCertificates)
	certificates.Get("/download/university/:universityId", handlers.DownloadCertificatesByUniversity)
	certificates.Get("/download/college/:collegeId", handlers.DownloadCertificatesByCollege)
	certificates.Put("/:certNumber", handlers.UpdateCertificate)
	certificates.Patch("/:certNumber", handlers.ToggleRevokeCertificate)
	certificates.Delete("/:certNumber", handlers.DeleteCertificate)
}
