package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a confirmed lesson. Immutable once created; the only
// lifecycle transition is deletion (cancellation).
type Booking struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	InstructorID uuid.UUID `gorm:"not null;index" json:"instructor_id"`
	StudentID    uuid.UUID `gorm:"not null;index" json:"student_id"`
	StartTime    time.Time `gorm:"not null" json:"start_time"`
	EndTime      time.Time `gorm:"not null" json:"end_time"`

	Instructor User `gorm:"foreignkey:InstructorID" json:"instructor,omitempty"`
	Student    User `gorm:"foreignkey:StudentID" json:"student,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
