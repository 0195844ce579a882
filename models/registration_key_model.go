package models

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationKey is a one-time signup key issued by an admin. The key's
// role decides whether the new account becomes a student or an instructor.
type RegistrationKey struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Key      string     `gorm:"size:64;not null;unique" json:"key"`
	Role     string     `gorm:"size:20;not null;default:'student'" json:"role"`
	UsedByID *uuid.UUID `gorm:"" json:"used_by_id"`
	UsedAt   *time.Time `json:"used_at"`

	CreatedAt time.Time `json:"created_at"`
}
