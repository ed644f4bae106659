package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/plannerapp/planner/internal/domain"
	"github.com/plannerapp/planner/internal/repo"
)

// ParticipantService implements business logic for trip participants.
type ParticipantService struct {
	participants repo.ParticipantRepo
}

// NewParticipantService constructs a ParticipantService backed by the
// provided repo.
func NewParticipantService(participants repo.ParticipantRepo) *ParticipantService {
	return &ParticipantService{participants: participants}
}

// ListByTripID returns all participants of a trip in insertion order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ParticipantService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	participants, err := s.participants.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ParticipantService.ListByTripID: %w", err)
	}
	if participants == nil {
		return []domain.Participant{}, nil
	}
	return participants, nil
}

// Confirm records a participant's attendance confirmation.
// Name must be non-blank and email must be well-formed; the email is
// stored normalized. Returns domain.ErrNotFound if the participant does
// not exist.
func (s *ParticipantService) Confirm(ctx context.Context, id uuid.UUID, name, email string) (domain.Participant, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Participant{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !domain.ValidEmail(email) {
		return domain.Participant{}, fmt.Errorf("%w: %q", domain.ErrInvalidEmail, email)
	}

	confirmed, err := s.participants.Confirm(ctx, id, strings.TrimSpace(name), domain.NormalizeEmail(email))
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Confirm: %w", err)
	}
	return confirmed, nil
}
