package handlers

import (
	"time"

	"github.com/lessonbooker/server/scheduling"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	InstructorID string `json:"instructor_id" validate:"required,uuid"`
	StartTime    string `json:"start_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndTime      string `json:"end_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

func CreateBooking(c *fiber.Ctx) error {
	actor := actorFrom(c)

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	instructorID, _ := uuid.Parse(req.InstructorID)
	startTime, _ := time.Parse(time.RFC3339, req.StartTime)
	endTime, _ := time.Parse(time.RFC3339, req.EndTime)

	booking, err := Scheduler.RequestBooking(c.Context(), actor.AccountID, instructorID,
		scheduling.TimeInterval{Start: startTime, End: endTime})
	if err != nil {
		return c.Status(schedulingStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

func GetMyBookings(c *fiber.Ctx) error {
	actor := actorFrom(c)

	bookings, err := Scheduler.QueryBookings(c.Context(), nil, &actor.AccountID)
	if err != nil {
		return c.Status(schedulingStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(bookings)
}

func GetMyInstructorBookings(c *fiber.Ctx) error {
	actor := actorFrom(c)

	bookings, err := Scheduler.QueryBookings(c.Context(), &actor.AccountID, nil)
	if err != nil {
		return c.Status(schedulingStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(bookings)
}

// CancelBooking serves students, instructors and admins alike; the
// facade decides whether the actor may cancel this particular booking.
func CancelBooking(c *fiber.Ctx) error {
	actor := actorFrom(c)

	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	cancelled, err := Scheduler.CancelBooking(c.Context(), actor, bookingID)
	if err != nil {
		return c.Status(schedulingStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Booking cancelled", "booking": cancelled})
}

func ListAllBookings(c *fiber.Ctx) error {
	bookings, err := Scheduler.QueryBookings(c.Context(), nil, nil)
	if err != nil {
		return c.Status(schedulingStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(bookings)
}
