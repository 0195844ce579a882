package scheduling

import "errors"

// All scheduling failures are expected, recoverable outcomes returned
// to the caller. Handlers match on them with errors.Is.
var (
	// ErrInvalidInterval rejects a malformed request (start >= end)
	// before any stored state is touched.
	ErrInvalidInterval = errors.New("invalid interval: start must be before end")

	// ErrNoMatchingWindow means a removal targeted time that no single
	// availability window fully contains.
	ErrNoMatchingWindow = errors.New("no availability window contains the requested interval")

	// ErrUnsupportedDuration rejects a booking whose length is not on
	// the configured whitelist.
	ErrUnsupportedDuration = errors.New("requested duration is not offered")

	// ErrDailyLimitExceeded rejects a student who already holds a
	// booking on the same calendar day, with any instructor.
	ErrDailyLimitExceeded = errors.New("student already has a booking on this day")

	// ErrOutsideAvailability rejects a booking not fully inside one of
	// the instructor's open windows.
	ErrOutsideAvailability = errors.New("requested time is outside the instructor's availability")

	// ErrSlotConflict rejects a booking overlapping an existing one.
	ErrSlotConflict = errors.New("requested time conflicts with an existing booking")

	// ErrBookingNotFound means a cancellation referenced an unknown booking.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrNotPermitted means the acting user may not cancel this booking.
	ErrNotPermitted = errors.New("not permitted to modify this booking")

	// ErrConcurrentModification signals a stale read detected by the
	// persistence layer; the whole operation is safe to retry.
	ErrConcurrentModification = errors.New("concurrent modification detected, retry the operation")

	// ErrPersistenceUnavailable signals a storage failure with no
	// partial state committed.
	ErrPersistenceUnavailable = errors.New("persistence unavailable")
)
