package routes

import (
	"github.com/lessonbooker/server/handlers"
	"github.com/lessonbooker/server/middleware"
	"github.com/gofiber/fiber/v2"
)

func AvailabilityRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/instructors", handlers.ListInstructors)
	api.Get("/instructors/:instructorId/availability", handlers.GetInstructorAvailability)
	api.Get("/availability", handlers.ListAllAvailability)

	instructor := api.Group("/instructor", middleware.Protected(), middleware.InstructorRequired())

	availability := instructor.Group("/availability")
	availability.Post("", handlers.PublishAvailability)
	availability.Delete("", handlers.WithdrawAvailability)
	availability.Delete("/day/:date", handlers.ClearDay)
	availability.Get("/me", handlers.GetMyAvailability)

	instructor.Get("/bookings", handlers.GetMyInstructorBookings)
	instructor.Delete("/bookings/:bookingId", handlers.CancelBooking)
}
