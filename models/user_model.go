package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName string    `gorm:"size:255;not null" json:"full_name"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"size:20;not null;default:'student'" json:"role"`

	DisplayName *string `gorm:"size:255" json:"display_name"`
	PhoneNumber *string `gorm:"size:50" json:"phone_number"`
	Address     *string `gorm:"size:255" json:"address"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileComplete reports whether the display fields the calendar UI
// gates on have all been filled in.
func (u User) ProfileComplete() bool {
	return u.DisplayName != nil && *u.DisplayName != "" &&
		u.PhoneNumber != nil && *u.PhoneNumber != ""
}
