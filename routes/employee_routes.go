package routes

import (
	"github.com/devashishkr3/vaastman-backend/handlers"
	"github.com/devashishkr3/vaastman-backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func EmployeeRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	employee := api.Group("/employee", middleware.Protected(), middleware.EmployeeRequired())

	employee.Get("/dashboard", handlers.EmployeeDashboard)
	employee.Post("/certificates/create", handlers.CreateCertificate)
	employee.Put("/certificates/:certNumber", handlers.UpdateCertificate)
}
