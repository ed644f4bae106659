package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a single itinerary entry: something happening at a point
// in time during a trip.
type Activity struct {
	ID       uuid.UUID `json:"id"`
	TripID   uuid.UUID `json:"-"`
	Title    string    `json:"title"`
	OccursAt time.Time `json:"occurs_at"`
}

// DayActivities is one bucket of the server's day-grouped activity
// payload: a calendar day plus its activities ordered by OccursAt
// ascending. A day inside the trip range with no activities is still
// present with an empty list.
type DayActivities struct {
	Date       Day        `json:"date"`
	Activities []Activity `json:"activities"`
}
