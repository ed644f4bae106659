package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/plannerapp/planner/internal/domain"
	"github.com/plannerapp/planner/internal/repo"
)

// ActivityService implements business logic for itinerary activities.
// It holds the trips repo because creating or listing activities requires
// the parent trip (existence check and date range).
type ActivityService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided repos.
func NewActivityService(trips repo.TripRepo, activities repo.ActivityRepo) *ActivityService {
	return &ActivityService{trips: trips, activities: activities}
}

// Create validates the activity against its parent trip, then persists.
// Returns domain.ErrNotFound if the trip does not exist and
// domain.ErrValidation if the title is blank or the activity falls
// outside the trip's date range.
func (s *ActivityService) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	trip, err := s.trips.GetByID(ctx, activity.TripID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}

	if strings.TrimSpace(activity.Title) == "" {
		return domain.Activity{}, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	day := domain.DayOf(activity.OccursAt)
	if day.Before(trip.StartsAt) || day.After(trip.EndsAt) {
		return domain.Activity{}, fmt.Errorf("%w: activity date is outside the trip period", domain.ErrValidation)
	}

	created, err := s.activities.Create(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return created, nil
}

// ListGroupedByDay returns one bucket per day of the trip's full
// [starts_at, ends_at] range, in ascending day order, each holding that
// day's activities ordered by occurs_at. Days without activities are
// present with an empty list — clients render them as placeholders, so
// they must not be dropped here.
func (s *ActivityService) ListGroupedByDay(ctx context.Context, tripID uuid.UUID) ([]domain.DayActivities, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListGroupedByDay: %w", err)
	}

	activities, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListGroupedByDay: %w", err)
	}

	byDay := make(map[domain.Day][]domain.Activity, len(activities))
	for _, a := range activities {
		day := domain.DayOf(a.OccursAt)
		byDay[day] = append(byDay[day], a)
	}

	var groups []domain.DayActivities
	for day := trip.StartsAt; !day.After(trip.EndsAt); day = day.Next() {
		bucket := byDay[day]
		if bucket == nil {
			bucket = []domain.Activity{}
		}
		groups = append(groups, domain.DayActivities{Date: day, Activities: bucket})
	}

	return groups, nil
}
