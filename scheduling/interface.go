package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lessonbooker/server/models"
)

// Store is the persistence collaborator. Every write call is atomic:
// either the whole diff/record lands or nothing does, and concurrent
// readers never observe a partial write. Implementations report stale
// reads as ErrConcurrentModification and storage failures as
// ErrPersistenceUnavailable.
type Store interface {
	LoadWindows(ctx context.Context, instructorID uuid.UUID) ([]models.AvailabilityWindow, error)
	AllWindows(ctx context.Context) ([]models.AvailabilityWindow, error)

	LoadBookings(ctx context.Context, instructorID uuid.UUID) ([]models.Booking, error)
	LoadStudentBookings(ctx context.Context, studentID uuid.UUID) ([]models.Booking, error)
	LoadStudentBookingsOn(ctx context.Context, studentID uuid.UUID, day time.Time) ([]models.Booking, error)
	LoadBooking(ctx context.Context, id uuid.UUID) (models.Booking, error)
	AllBookings(ctx context.Context) ([]models.Booking, error)

	ApplyWindowDiff(ctx context.Context, diff WindowDiff) error
	SaveBooking(ctx context.Context, booking *models.Booking) error
	DeleteBooking(ctx context.Context, id uuid.UUID) error
}

// Notifier is the change-notification collaborator. Emit is
// fire-and-forget: subscribers refetch on any signal, so duplicate or
// dropped notifications are tolerable.
type Notifier interface {
	Emit(topic string)
}
