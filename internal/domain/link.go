package domain

import "github.com/google/uuid"

// Link is a URL shared on a trip (booking confirmation, Airbnb page, ...).
type Link struct {
	ID     uuid.UUID `json:"id"`
	TripID uuid.UUID `json:"-"`
	Title  string    `json:"title"`
	URL    string    `json:"url"`
}
