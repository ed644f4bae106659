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

func echoLinkRepo() *mockLinkRepo {
	return &mockLinkRepo{
		create: func(_ context.Context, l domain.Link) (domain.Link, error) {
			l.ID = uuid.New()
			return l, nil
		},
	}
}

// ---- Create ----

func TestLinkService_Create(t *testing.T) {
	trip := validTrip(t)
	trip.ID = uuid.New()
	svc := service.NewLinkService(fixedTripRepo(trip), echoLinkRepo())

	created, err := svc.Create(context.Background(), domain.Link{
		TripID: trip.ID,
		Title:  "Reserva do Airbnb",
		URL:    "https://airbnb.com/rooms/123",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestLinkService_Create_TripNotFound(t *testing.T) {
	trip := validTrip(t)
	trip.ID = uuid.New()
	svc := service.NewLinkService(fixedTripRepo(trip), echoLinkRepo())

	_, err := svc.Create(context.Background(), domain.Link{
		TripID: uuid.New(),
		Title:  "Reserva",
		URL:    "https://example.com",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLinkService_Create_Invalid(t *testing.T) {
	trip := validTrip(t)
	trip.ID = uuid.New()
	svc := service.NewLinkService(fixedTripRepo(trip), echoLinkRepo())

	tests := []struct {
		name  string
		title string
		url   string
	}{
		{"blank title", "  ", "https://example.com"},
		{"empty url", "Reserva", ""},
		{"no scheme", "Reserva", "example.com/page"},
		{"unsupported scheme", "Reserva", "ftp://example.com/file"},
		{"no host", "Reserva", "https://"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), domain.Link{
				TripID: trip.ID,
				Title:  tt.title,
				URL:    tt.url,
			})
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

// ---- ListByTripID ----

func TestLinkService_ListByTripID(t *testing.T) {
	tripID := uuid.New()
	want := []domain.Link{
		{ID: uuid.New(), TripID: tripID, Title: "Airbnb", URL: "https://airbnb.com/rooms/123"},
		{ID: uuid.New(), TripID: tripID, Title: "Passagens", URL: "https://example.com/tickets"},
	}
	links := &mockLinkRepo{
		listByTripID: func(_ context.Context, id uuid.UUID) ([]domain.Link, error) {
			assert.Equal(t, tripID, id)
			return want, nil
		},
	}
	svc := service.NewLinkService(&mockTripRepo{}, links)

	got, err := svc.ListByTripID(context.Background(), tripID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLinkService_ListByTripID_EmptyIsNonNil(t *testing.T) {
	links := &mockLinkRepo{
		listByTripID: func(_ context.Context, _ uuid.UUID) ([]domain.Link, error) {
			return nil, nil
		},
	}
	svc := service.NewLinkService(&mockTripRepo{}, links)

	got, err := svc.ListByTripID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
