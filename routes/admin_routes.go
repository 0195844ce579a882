package routes

import (
	"github.com/lessonbooker/server/handlers"
	"github.com/lessonbooker/server/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())
	admin.Post("/registration-keys", handlers.GenerateRegistrationKey)
	admin.Get("/students", handlers.ListStudents)
	admin.Post("/revoke-access/:userId", handlers.RevokeAccess)
	admin.Put("/users/:userId", handlers.AdminUpdateUser)
	admin.Get("/bookings", handlers.ListAllBookings)
	admin.Delete("/bookings/:bookingId", handlers.CancelBooking)
}
