package routes

import (
	"github.com/devashishkr3/vaastman-backend/handlers"
	"github.com/gofiber/fiber/v2"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/certificates/verify/:hash", handlers.VerifyCertificate)
	api.Get("/certificates/search", handlers.SearchCertificates)
	api.Post("/contact", handlers.SubmitContact)
	api.Post("/career", handlers.SubmitCareer)
}
