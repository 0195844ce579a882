package scheduling

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lessonbooker/server/models"
)

// Roles supplied by the identity collaborator.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// Actor is the authenticated account an operation runs on behalf of.
type Actor struct {
	AccountID uuid.UUID
	Role      string
}

// PublishResult is the per-occurrence outcome of a (possibly recurring)
// availability publication. Occurrences succeed or fail independently.
type PublishResult struct {
	Interval TimeInterval               `json:"interval"`
	Window   *models.AvailabilityWindow `json:"window,omitempty"`
	Err      error                      `json:"-"`
	Error    string                     `json:"error,omitempty"`
}

// Service is the scheduling facade: the single entry point through
// which availability and bookings are mutated. Mutations are
// single-writer per instructor; reads go straight to the store.
type Service struct {
	store     Store
	notifier  Notifier
	validator Validator

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// NewService wires the facade. The duration whitelist is a startup
// contract: an empty list or a non-positive entry is a configuration
// bug and fails fast here rather than per-request.
func NewService(store Store, notifier Notifier, allowed []time.Duration) (*Service, error) {
	if len(allowed) == 0 {
		return nil, fmt.Errorf("scheduling: duration whitelist is empty")
	}
	for _, d := range allowed {
		if d <= 0 {
			return nil, fmt.Errorf("scheduling: non-positive duration %v in whitelist", d)
		}
	}
	return &Service{
		store:     store,
		notifier:  notifier,
		validator: Validator{Allowed: allowed},
		locks:     map[uuid.UUID]*sync.Mutex{},
	}, nil
}

// instructorLock returns the serialization scope for one instructor's
// read-modify-write cycles.
func (s *Service) instructorLock(instructorID uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[instructorID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[instructorID] = l
	}
	return l
}

func (s *Service) emit(topic uuid.UUID) {
	if s.notifier != nil {
		s.notifier.Emit(topic.String())
	}
}

// PublishAvailability opens the given interval on the instructor's
// calendar, expanded weekly up to repeatUntil when set. Each occurrence
// is applied and persisted on its own; the result slice reports every
// occurrence, failed ones included.
func (s *Service) PublishAvailability(ctx context.Context, instructorID uuid.UUID, iv TimeInterval, repeatUntil *time.Time) ([]PublishResult, error) {
	lock := s.instructorLock(instructorID)
	lock.Lock()
	defer lock.Unlock()

	windows, err := s.store.LoadWindows(ctx, instructorID)
	if err != nil {
		return nil, err
	}
	ledger := NewLedger(instructorID, windows)

	results := make([]PublishResult, 0, 1)
	changed := false
	for _, occ := range ExpandWeekly(iv, repeatUntil) {
		res := PublishResult{Interval: occ}
		diff, window, err := ledger.AddWindow(occ)
		if err == nil && !diff.Empty() {
			err = s.store.ApplyWindowDiff(ctx, diff)
		}
		if err != nil {
			res.Err = err
			res.Error = err.Error()
		} else {
			res.Window = &window
			changed = changed || !diff.Empty()
		}
		results = append(results, res)
	}

	if changed {
		s.emit(instructorID)
	}
	return results, nil
}

// WithdrawAvailability removes the interval from the one window that
// fully contains it, splitting the window if needed.
func (s *Service) WithdrawAvailability(ctx context.Context, instructorID uuid.UUID, iv TimeInterval) (WindowDiff, error) {
	lock := s.instructorLock(instructorID)
	lock.Lock()
	defer lock.Unlock()

	windows, err := s.store.LoadWindows(ctx, instructorID)
	if err != nil {
		return WindowDiff{}, err
	}
	ledger := NewLedger(instructorID, windows)

	diff, err := ledger.RemoveSubInterval(iv)
	if err != nil {
		return WindowDiff{}, err
	}
	if err := s.store.ApplyWindowDiff(ctx, diff); err != nil {
		return WindowDiff{}, err
	}

	s.emit(instructorID)
	return diff, nil
}

// ClearDay deletes every window the instructor has on the given
// calendar day and returns the deleted windows.
func (s *Service) ClearDay(ctx context.Context, instructorID uuid.UUID, day time.Time) ([]models.AvailabilityWindow, error) {
	lock := s.instructorLock(instructorID)
	lock.Lock()
	defer lock.Unlock()

	windows, err := s.store.LoadWindows(ctx, instructorID)
	if err != nil {
		return nil, err
	}
	ledger := NewLedger(instructorID, windows)

	diff := ledger.RemoveAllForDay(day)
	if diff.Empty() {
		return nil, nil
	}
	if err := s.store.ApplyWindowDiff(ctx, diff); err != nil {
		return nil, err
	}

	s.emit(instructorID)
	return diff.Removed, nil
}

// RequestBooking validates and creates a booking for the student. The
// whole check-then-act sequence runs under the instructor's lock so two
// students cannot claim the same slot.
func (s *Service) RequestBooking(ctx context.Context, studentID, instructorID uuid.UUID, iv TimeInterval) (models.Booking, error) {
	lock := s.instructorLock(instructorID)
	lock.Lock()
	defer lock.Unlock()

	windows, err := s.store.LoadWindows(ctx, instructorID)
	if err != nil {
		return models.Booking{}, err
	}
	bookings, err := s.store.LoadBookings(ctx, instructorID)
	if err != nil {
		return models.Booking{}, err
	}
	sameDay, err := s.store.LoadStudentBookingsOn(ctx, studentID, iv.Start)
	if err != nil {
		return models.Booking{}, err
	}

	accepted, err := s.validator.Validate(BookingRequest{
		InstructorID: instructorID,
		StudentID:    studentID,
		Interval:     iv,
	}, windows, bookings, sameDay)
	if err != nil {
		return models.Booking{}, err
	}

	booking := models.Booking{
		ID:           uuid.New(),
		InstructorID: accepted.InstructorID,
		StudentID:    studentID,
		StartTime:    iv.Start,
		EndTime:      iv.End,
	}
	if err := s.store.SaveBooking(ctx, &booking); err != nil {
		return models.Booking{}, err
	}

	s.emit(accepted.InstructorID)
	s.emit(studentID)
	return booking, nil
}

// CancelBooking deletes a booking on behalf of an admin, the owning
// instructor, or the owning student.
func (s *Service) CancelBooking(ctx context.Context, actor Actor, bookingID uuid.UUID) (models.Booking, error) {
	booking, err := s.store.LoadBooking(ctx, bookingID)
	if err != nil {
		return models.Booking{}, err
	}

	switch {
	case actor.Role == RoleAdmin:
	case actor.Role == RoleInstructor && actor.AccountID == booking.InstructorID:
	case actor.Role == RoleStudent && actor.AccountID == booking.StudentID:
	default:
		return models.Booking{}, ErrNotPermitted
	}

	lock := s.instructorLock(booking.InstructorID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.store.DeleteBooking(ctx, bookingID); err != nil {
		return models.Booking{}, err
	}

	s.emit(booking.InstructorID)
	s.emit(booking.StudentID)
	return booking, nil
}

// QueryAvailability returns one instructor's windows, or everyone's
// when instructorID is nil. Reads are lock-free; slightly stale views
// are corrected by the refetch the change notification triggers.
func (s *Service) QueryAvailability(ctx context.Context, instructorID *uuid.UUID) ([]models.AvailabilityWindow, error) {
	if instructorID == nil {
		return s.store.AllWindows(ctx)
	}
	return s.store.LoadWindows(ctx, *instructorID)
}

// QueryBookings returns bookings filtered by instructor or student, or
// every booking when both filters are nil.
func (s *Service) QueryBookings(ctx context.Context, instructorID, studentID *uuid.UUID) ([]models.Booking, error) {
	switch {
	case instructorID != nil:
		return s.store.LoadBookings(ctx, *instructorID)
	case studentID != nil:
		return s.store.LoadStudentBookings(ctx, *studentID)
	default:
		return s.store.AllBookings(ctx)
	}
}
