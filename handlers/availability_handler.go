package handlers

import (
	"errors"
	"time"

	"github.com/lessonbooker/server/database"
	"github.com/lessonbooker/server/models"
	"github.com/lessonbooker/server/scheduling"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// schedulingStatus maps the facade's typed rejections to HTTP statuses.
func schedulingStatus(err error) int {
	switch {
	case errors.Is(err, scheduling.ErrInvalidInterval):
		return fiber.StatusBadRequest
	case errors.Is(err, scheduling.ErrNoMatchingWindow),
		errors.Is(err, scheduling.ErrBookingNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, scheduling.ErrNotPermitted):
		return fiber.StatusForbidden
	case errors.Is(err, scheduling.ErrUnsupportedDuration),
		errors.Is(err, scheduling.ErrDailyLimitExceeded),
		errors.Is(err, scheduling.ErrOutsideAvailability),
		errors.Is(err, scheduling.ErrSlotConflict):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, scheduling.ErrConcurrentModification):
		return fiber.StatusConflict
	case errors.Is(err, scheduling.ErrPersistenceUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

type PublishAvailabilityRequest struct {
	StartTime   string `json:"start_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndTime     string `json:"end_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	RepeatUntil string `json:"repeat_until,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func PublishAvailability(c *fiber.Ctx) error {
	actor := actorFrom(c)

	var req PublishAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	startTime, _ := time.Parse(time.RFC3339, req.StartTime)
	endTime, _ := time.Parse(time.RFC3339, req.EndTime)

	var repeatUntil *time.Time
	if req.RepeatUntil != "" {
		until, _ := time.Parse("2006-01-02", req.RepeatUntil)
		repeatUntil = &until
	}

	results, err := Scheduler.PublishAvailability(c.Context(), actor.AccountID,
		scheduling.TimeInterval{Start: startTime, End: endTime}, repeatUntil)
	if err != nil {
		return c.Status(schedulingStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	succeeded := 0
	for _, r := range results {
		if r.Err == nil {
			succeeded++
		}
	}
	status := fiber.StatusCreated
	if succeeded == 0 {
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(fiber.Map{
		"results":   results,
		"succeeded": succeeded,
		"failed":    len(results) - succeeded,
	})
}

type WithdrawAvailabilityRequest struct {
	StartTime string `json:"start_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndTime   string `json:"end_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

func WithdrawAvailability(c *fiber.Ctx) error {
	actor := actorFrom(c)

	var req WithdrawAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	startTime, _ := time.Parse(time.RFC3339, req.StartTime)
	endTime, _ := time.Parse(time.RFC3339, req.EndTime)

	diff, err := Scheduler.WithdrawAvailability(c.Context(), actor.AccountID,
		scheduling.TimeInterval{Start: startTime, End: endTime})
	if err != nil {
		return c.Status(schedulingStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(diff)
}

func ClearDay(c *fiber.Ctx) error {
	actor := actorFrom(c)

	day, err := time.Parse("2006-01-02", c.Params("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}

	removed, err := Scheduler.ClearDay(c.Context(), actor.AccountID, day)
	if err != nil {
		return c.Status(schedulingStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"removed": removed})
}

func GetMyAvailability(c *fiber.Ctx) error {
	actor := actorFrom(c)

	windows, err := Scheduler.QueryAvailability(c.Context(), &actor.AccountID)
	if err != nil {
		return c.Status(schedulingStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(windows)
}

func GetInstructorAvailability(c *fiber.Ctx) error {
	instructorID, err := uuid.Parse(c.Params("instructorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid instructor id"})
	}

	windows, err := Scheduler.QueryAvailability(c.Context(), &instructorID)
	if err != nil {
		return c.Status(schedulingStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(windows)
}

func ListAllAvailability(c *fiber.Ctx) error {
	windows, err := Scheduler.QueryAvailability(c.Context(), nil)
	if err != nil {
		return c.Status(schedulingStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(windows)
}

func ListInstructors(c *fiber.Ctx) error {
	var instructors []models.User
	err := database.DB.
		Where("role = ? AND is_active = ?", "instructor", true).
		Order("full_name asc").
		Find(&instructors).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve instructors"})
	}
	return c.JSON(instructors)
}
