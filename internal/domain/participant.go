package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participant is a person invited to a trip. Invitees are created with
// only an email; Name is filled in when they confirm attendance.
type Participant struct {
	ID          uuid.UUID
	TripID      uuid.UUID
	Name        string
	Email       string
	IsConfirmed bool
	CreatedAt   time.Time
}
