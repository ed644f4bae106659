// Package domain contains the core data types for the plann.er trip planner.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (calendar, wizard, itinerary, repo, service,
// handler, client).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a planned journey: a destination and an inclusive
// [StartsAt, EndsAt] date range. A trip is the top-level aggregate;
// participants, activities and links belong to a trip.
type Trip struct {
	ID          uuid.UUID `json:"id"`
	Destination string    `json:"destination"`
	StartsAt    Day       `json:"starts_at"`
	EndsAt      Day       `json:"ends_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
