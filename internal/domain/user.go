package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user. All logbook entities
// are scoped to exactly one owning user.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
