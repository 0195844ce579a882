package main

import (
	"log"
	"time"

	config "github.com/lessonbooker/server/configs"
	"github.com/lessonbooker/server/database"
	"github.com/lessonbooker/server/handlers"
	"github.com/lessonbooker/server/jobs"
	"github.com/lessonbooker/server/routes"
	"github.com/lessonbooker/server/scheduling"
	"github.com/lessonbooker/server/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	database.ConnectDB()
	database.Migrate()
	database.SeedAdmin()

	allowedDurations, err := config.AllowedDurations()
	if err != nil {
		log.Fatalf("🔥 Invalid duration configuration: %v", err)
	}

	scheduler, err := scheduling.NewService(
		database.NewSchedulingStore(database.DB),
		websocket.HubNotifier{},
		allowedDurations,
	)
	if err != nil {
		log.Fatalf("🔥 Failed to build scheduling service: %v", err)
	}
	handlers.InitScheduler(scheduler)

	c := cron.New()
	c.AddFunc("*/5 * * * *", jobs.SendLessonReminders)
	go c.Start()
	log.Println("✅ Cron job for lesson reminders scheduled successfully.")

	app := fiber.New(fiber.Config{
		Prefork:           false,
		AppName:           "Lesson Booker",
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
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to Lesson Booker API",
		})
	})

	routes.AuthRoutes(app)
	routes.ProfileRoutes(app)
	routes.AvailabilityRoutes(app)
	routes.BookingRoutes(app)
	routes.AdminRoutes(app)

	go websocket.RunHub()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	log.Println("✅ Server is running on port 8080")
	if err := app.Listen(":8080"); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
