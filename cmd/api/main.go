package main

import (
	"log"
	"time"

	config "github.com/devashishkr3/vaastman-backend/configs"
	"github.com/devashishkr3/vaastman-backend/database"
	"github.com/devashishkr3/vaastman-backend/handlers"
	"github.com/devashishkr3/vaastman-backend/jobs"
	"github.com/devashishkr3/vaastman-backend/notifications"
	"github.com/devashishkr3/vaastman-backend/render"
	"github.com/devashishkr3/vaastman-backend/routes"
	"github.com/devashishkr3/vaastman-backend/services"
	"github.com/devashishkr3/vaastman-backend/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

const uploadsDir = "uploads"

func main() {
	database.ConnectDB()
	database.Migrate()
	database.SeedAdmin()
	notifications.InitEmailService()
	if notifications.EmailClient == nil {
		log.Fatalf("🔥 Email service must be configured for certificate issuance")
	}

	store, err := storage.NewCloudinaryStore(config.Config("CLOUDINARY_URL"))
	if err != nil {
		log.Fatalf("🔥 Failed to initialize artifact store: %v", err)
	}

	certSvc := services.NewCertificateService(
		database.DB,
		render.ChromeRasterizer{},
		render.GofpdfConverter{},
		store,
		notifications.EmailClient,
		services.CertificateServiceConfig{
			PublicBaseURL: config.Config("PUBLIC_BASE_URL"),
			UploadsDir:    uploadsDir,
		},
	)
	handlers.InitCertificateHandlers(certSvc)

	c := cron.New()
	c.AddFunc("@hourly", jobs.SweepStaleArtifacts(uploadsDir))
	go c.Start()
	log.Println("✅ Cron job for temp artifact cleanup scheduled successfully.")

	app := fiber.New(fiber.Config{
		Prefork:           false,
		AppName:           "Vaastman Certificates",
		CaseSensitive:     true,
		StrictRouting:     true,
		EnablePrintRoutes: true,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization, Content-Disposition",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Kolkata",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Welcome to Vaastman Solutions API",
		})
	})

	routes.PublicRoutes(app)
	routes.AuthRoutes(app)
	routes.AdminRoutes(app)
	routes.EmployeeRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	port := config.Config("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
