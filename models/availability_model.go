package models

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityWindow is one open lesson window on an instructor's
// calendar. The set of windows per instructor is kept normalized:
// no two windows overlap or touch.
type AvailabilityWindow struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	InstructorID uuid.UUID `gorm:"not null;index" json:"instructor_id"`
	StartTime    time.Time `gorm:"not null" json:"start_time"`
	EndTime      time.Time `gorm:"not null" json:"end_time"`

	Instructor User `gorm:"foreignkey:InstructorID" json:"instructor,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
