package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plannerapp/planner/internal/domain"
	"github.com/plannerapp/planner/internal/service"
)

// ---- ListByTripID ----

func TestParticipantService_ListByTripID(t *testing.T) {
	tripID := uuid.New()
	want := []domain.Participant{
		{ID: uuid.New(), TripID: tripID, Email: "ana@example.com"},
		{ID: uuid.New(), TripID: tripID, Email: "bob@example.com", IsConfirmed: true},
	}
	participants := &mockParticipantRepo{
		listByTripID: func(_ context.Context, id uuid.UUID) ([]domain.Participant, error) {
			assert.Equal(t, tripID, id)
			return want, nil
		},
	}
	svc := service.NewParticipantService(participants)

	got, err := svc.ListByTripID(context.Background(), tripID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParticipantService_ListByTripID_EmptyIsNonNil(t *testing.T) {
	participants := &mockParticipantRepo{
		listByTripID: func(_ context.Context, _ uuid.UUID) ([]domain.Participant, error) {
			return nil, nil
		},
	}
	svc := service.NewParticipantService(participants)

	got, err := svc.ListByTripID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ---- Confirm ----

func TestParticipantService_Confirm(t *testing.T) {
	id := uuid.New()
	participants := &mockParticipantRepo{
		confirm: func(_ context.Context, gotID uuid.UUID, name, email string) (domain.Participant, error) {
			assert.Equal(t, id, gotID)
			assert.Equal(t, "Ana Souza", name)
			assert.Equal(t, "ana@example.com", email)
			return domain.Participant{ID: gotID, Name: name, Email: email, IsConfirmed: true}, nil
		},
	}
	svc := service.NewParticipantService(participants)

	got, err := svc.Confirm(context.Background(), id, "  Ana Souza  ", "Ana@Example.com")
	require.NoError(t, err)
	assert.True(t, got.IsConfirmed)
	assert.Equal(t, "ana@example.com", got.Email)
}

func TestParticipantService_Confirm_BlankName(t *testing.T) {
	svc := service.NewParticipantService(&mockParticipantRepo{})

	_, err := svc.Confirm(context.Background(), uuid.New(), "   ", "ana@example.com")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParticipantService_Confirm_InvalidEmail(t *testing.T) {
	svc := service.NewParticipantService(&mockParticipantRepo{})

	_, err := svc.Confirm(context.Background(), uuid.New(), "Ana", "not-an-email")
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)
}

func TestParticipantService_Confirm_NotFound(t *testing.T) {
	participants := &mockParticipantRepo{
		confirm: func(_ context.Context, _ uuid.UUID, _, _ string) (domain.Participant, error) {
			return domain.Participant{}, domain.ErrNotFound
		},
	}
	svc := service.NewParticipantService(participants)

	_, err := svc.Confirm(context.Background(), uuid.New(), "Ana", "ana@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
