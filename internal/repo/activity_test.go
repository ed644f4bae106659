package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plannerapp/planner/internal/domain"
	"github.com/plannerapp/planner/internal/repo"
)

func TestActivityRepo_Create(t *testing.T) {
	tx := newTestTx(t)
	trips := repo.NewTripRepo(tx)
	activities := repo.NewActivityRepo(tx)
	ctx := context.Background()

	trip, err := trips.Create(ctx, tripFixture(t))
	require.NoError(t, err)

	occursAt := time.Date(2026, 3, 12, 14, 0, 0, 0, time.UTC)
	got, err := activities.Create(ctx, domain.Activity{
		TripID:   trip.ID,
		Title:    "Passeio de barco",
		OccursAt: occursAt,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, trip.ID, got.TripID)
	assert.Equal(t, "Passeio de barco", got.Title)
	assert.True(t, got.OccursAt.Equal(occursAt), "OccursAt mismatch")
}

func TestActivityRepo_Create_UnknownTrip(t *testing.T) {
	activities := repo.NewActivityRepo(newTestTx(t))

	// trip_id is a foreign key
	_, err := activities.Create(context.Background(), domain.Activity{
		TripID:   uuid.New(),
		Title:    "Passeio",
		OccursAt: time.Now(),
	})
	assert.Error(t, err)
}

func TestActivityRepo_ListByTripID_Ordering(t *testing.T) {
	tx := newTestTx(t)
	trips := repo.NewTripRepo(tx)
	activities := repo.NewActivityRepo(tx)
	ctx := context.Background()

	trip, err := trips.Create(ctx, tripFixture(t))
	require.NoError(t, err)

	// insert out of chronological order
	later := time.Date(2026, 3, 12, 20, 0, 0, 0, time.UTC)
	earlier := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	_, err = activities.Create(ctx, domain.Activity{TripID: trip.ID, Title: "Jantar", OccursAt: later})
	require.NoError(t, err)
	_, err = activities.Create(ctx, domain.Activity{TripID: trip.ID, Title: "Café", OccursAt: earlier})
	require.NoError(t, err)

	got, err := activities.ListByTripID(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Café", got[0].Title)
	assert.Equal(t, "Jantar", got[1].Title)
}
