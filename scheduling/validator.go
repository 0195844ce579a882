package scheduling

import (
	"time"

	"github.com/google/uuid"
	"github.com/lessonbooker/server/models"
)

// BookingRequest is a student's request for a lesson slot.
type BookingRequest struct {
	InstructorID uuid.UUID
	StudentID    uuid.UUID
	Interval     TimeInterval
}

// Acceptance is a positive validation outcome. InstructorID is resolved
// from the matching availability window, which disambiguates feeds that
// aggregate several instructors' windows.
type Acceptance struct {
	InstructorID uuid.UUID
	Window       models.AvailabilityWindow
}

// Validator applies the booking acceptance rules. Allowed is the
// whitelist of lesson durations an instructor offers.
type Validator struct {
	Allowed []time.Duration
}

func (v Validator) durationAllowed(d time.Duration) bool {
	for _, a := range v.Allowed {
		if d == a {
			return true
		}
	}
	return false
}

// Validate runs the acceptance checks in order; the first failure wins
// so callers can report a precise reason:
//
//  1. the duration is on the whitelist,
//  2. the student holds no other booking on the same calendar day,
//  3. the interval lies inside one availability window,
//  4. the interval overlaps no existing booking.
//
// Availability is checked only here, at creation time. Windows that
// later shrink do not retroactively invalidate bookings already made.
func (v Validator) Validate(
	req BookingRequest,
	windows []models.AvailabilityWindow,
	bookings []models.Booking,
	studentBookingsThatDay []models.Booking,
) (Acceptance, error) {
	if _, err := NewInterval(req.Interval.Start, req.Interval.End); err != nil {
		return Acceptance{}, err
	}

	if !v.durationAllowed(req.Interval.Duration()) {
		return Acceptance{}, ErrUnsupportedDuration
	}

	for _, b := range studentBookingsThatDay {
		if SameDay(b.StartTime, req.Interval.Start) {
			return Acceptance{}, ErrDailyLimitExceeded
		}
	}

	var match *models.AvailabilityWindow
	for i, w := range windows {
		if (TimeInterval{Start: w.StartTime, End: w.EndTime}).Contains(req.Interval) {
			match = &windows[i]
			break
		}
	}
	if match == nil {
		return Acceptance{}, ErrOutsideAvailability
	}

	for _, b := range bookings {
		if (TimeInterval{Start: b.StartTime, End: b.EndTime}).Overlaps(req.Interval) {
			return Acceptance{}, ErrSlotConflict
		}
	}

	return Acceptance{InstructorID: match.InstructorID, Window: *match}, nil
}
