// Package service contains the business logic for the plann.er API.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/plannerapp/planner/internal/domain"
	"github.com/plannerapp/planner/internal/repo"
)

// minDestinationLen mirrors the wizard's client-side gate; the server
// re-validates because it cannot trust clients.
const minDestinationLen = 4

// TripService implements business logic for Trip operations.
// It holds the participants repo as well because creating a trip also
// creates one participant row per invited email.
type TripService struct {
	trips        repo.TripRepo
	participants repo.ParticipantRepo
}

// NewTripService constructs a TripService backed by the provided repos.
func NewTripService(trips repo.TripRepo, participants repo.ParticipantRepo) *TripService {
	return &TripService{trips: trips, participants: participants}
}

// Create validates and persists a new trip together with one participant
// per invited email. Invited emails are normalized and deduplicated;
// a malformed email fails the whole create with domain.ErrInvalidEmail.
func (s *TripService) Create(ctx context.Context, trip domain.Trip, emailsToInvite []string) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}

	invites, err := normalizeInvites(emailsToInvite)
	if err != nil {
		return domain.Trip{}, err
	}

	created, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	if len(invites) > 0 {
		participants := make([]domain.Participant, len(invites))
		for i, email := range invites {
			participants[i] = domain.Participant{TripID: created.ID, Email: email}
		}
		if err := s.participants.CreateBatch(ctx, participants); err != nil {
			return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
		}
	}

	return created, nil
}

// GetByID returns a single trip by ID.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// Update validates and updates destination and date range of an existing
// trip. Returns domain.ErrValidation for invalid input, domain.ErrNotFound
// if the trip does not exist.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	updated, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return updated, nil
}

// validateTrip enforces business rules common to both Create and Update.
//   - Destination must be non-empty and at least 4 characters after trimming.
//   - Both date bounds must be present, with ends_at >= starts_at
//     (a one-day trip is valid).
func validateTrip(trip domain.Trip) error {
	dest := strings.TrimSpace(trip.Destination)
	if dest == "" || trip.StartsAt.IsZero() || trip.EndsAt.IsZero() {
		return domain.ErrMissingFields
	}
	if len([]rune(dest)) < minDestinationLen {
		return domain.ErrDestinationTooShort
	}
	if trip.EndsAt.Before(trip.StartsAt) {
		return fmt.Errorf("%w: ends_at must not be before starts_at", domain.ErrValidation)
	}
	return nil
}

// normalizeInvites validates every email, normalizes it, and drops
// duplicates while preserving first-seen order.
func normalizeInvites(emails []string) ([]string, error) {
	seen := make(map[string]bool, len(emails))
	out := make([]string, 0, len(emails))
	for _, email := range emails {
		if !domain.ValidEmail(email) {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidEmail, email)
		}
		normalized := domain.NormalizeEmail(email)
		if seen[normalized] {
			continue
		}
		seen[normalized] = true
		out = append(out, normalized)
	}
	return out, nil
}
