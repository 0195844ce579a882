package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lessonbooker/server/models"
	"github.com/lessonbooker/server/scheduling"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SchedulingStore is the gorm-backed persistence collaborator for the
// scheduling facade. Every write runs in one transaction with row locks
// on the records it is about to replace, so a concurrent writer either
// waits or trips the stale-read check; readers never see a half-applied
// diff.
type SchedulingStore struct {
	db *gorm.DB
}

func NewSchedulingStore(db *gorm.DB) *SchedulingStore {
	return &SchedulingStore{db: db}
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", scheduling.ErrPersistenceUnavailable, err)
}

func (s *SchedulingStore) LoadWindows(ctx context.Context, instructorID uuid.UUID) ([]models.AvailabilityWindow, error) {
	var windows []models.AvailabilityWindow
	err := s.db.WithContext(ctx).
		Where("instructor_id = ?", instructorID).
		Order("start_time asc").
		Find(&windows).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return windows, nil
}

func (s *SchedulingStore) AllWindows(ctx context.Context) ([]models.AvailabilityWindow, error) {
	var windows []models.AvailabilityWindow
	if err := s.db.WithContext(ctx).Order("start_time asc").Find(&windows).Error; err != nil {
		return nil, storeErr(err)
	}
	return windows, nil
}

func (s *SchedulingStore) LoadBookings(ctx context.Context, instructorID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Where("instructor_id = ?", instructorID).
		Order("start_time asc").
		Find(&bookings).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return bookings, nil
}

func (s *SchedulingStore) LoadStudentBookings(ctx context.Context, studentID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Preload("Instructor").
		Where("student_id = ?", studentID).
		Order("start_time asc").
		Find(&bookings).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return bookings, nil
}

func (s *SchedulingStore) LoadStudentBookingsOn(ctx context.Context, studentID uuid.UUID, day time.Time) ([]models.Booking, error) {
	dayStart := scheduling.DayOf(day)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Where("student_id = ? AND start_time >= ? AND start_time < ?", studentID, dayStart, dayEnd).
		Find(&bookings).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return bookings, nil
}

func (s *SchedulingStore) LoadBooking(ctx context.Context, id uuid.UUID) (models.Booking, error) {
	var booking models.Booking
	err := s.db.WithContext(ctx).First(&booking, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Booking{}, scheduling.ErrBookingNotFound
	}
	if err != nil {
		return models.Booking{}, storeErr(err)
	}
	return booking, nil
}

func (s *SchedulingStore) AllBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.WithContext(ctx).Order("start_time asc").Find(&bookings).Error; err != nil {
		return nil, storeErr(err)
	}
	return bookings, nil
}

func (s *SchedulingStore) ApplyWindowDiff(ctx context.Context, diff scheduling.WindowDiff) error {
	if diff.Empty() {
		return nil
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(diff.Removed) > 0 {
			ids := make([]uuid.UUID, 0, len(diff.Removed))
			for _, w := range diff.Removed {
				ids = append(ids, w.ID)
			}

			var locked []models.AvailabilityWindow
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id IN ?", ids).
				Find(&locked).Error; err != nil {
				return err
			}
			if len(locked) != len(ids) {
				return scheduling.ErrConcurrentModification
			}

			if err := tx.Where("id IN ?", ids).Delete(&models.AvailabilityWindow{}).Error; err != nil {
				return err
			}
		}
		for i := range diff.Added {
			if err := tx.Create(&diff.Added[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, scheduling.ErrConcurrentModification) {
		return scheduling.ErrConcurrentModification
	}
	if err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *SchedulingStore) SaveBooking(ctx context.Context, booking *models.Booking) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Re-check under row locks: the facade serializes per
		// instructor in-process, but another instance of the server
		// may have raced us to the slot.
		var conflicting []models.Booking
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("instructor_id = ? AND start_time < ? AND end_time > ?",
				booking.InstructorID, booking.EndTime, booking.StartTime).
			Find(&conflicting).Error
		if err != nil {
			return err
		}
		if len(conflicting) > 0 {
			return scheduling.ErrConcurrentModification
		}
		return tx.Create(booking).Error
	})
	if errors.Is(err, scheduling.ErrConcurrentModification) {
		return scheduling.ErrConcurrentModification
	}
	if err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *SchedulingStore) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Booking{})
	if result.Error != nil {
		return storeErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return scheduling.ErrBookingNotFound
	}
	return nil
}
