package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/plannerapp/planner/internal/domain"
)

// createActivityRequest is the body of POST /trips/{tripID}/activities.
// OccursAt is a full RFC 3339 timestamp, unlike the trip bounds which
// are date-only.
type createActivityRequest struct {
	Title    string    `json:"title"`
	OccursAt time.Time `json:"occurs_at"`
}

// activityResponse is one activity inside a day group.
type activityResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	OccursAt time.Time `json:"occurs_at"`
}

// dayActivitiesResponse is one bucket of the day-grouped listing.
type dayActivitiesResponse struct {
	Date       openapi_types.Date `json:"date"`
	Activities []activityResponse `json:"activities"`
}

// CreateActivity handles POST /trips/{tripID}/activities.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	var body createActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	created, err := s.activities.Create(r.Context(), domain.Activity{
		TripID:   tripID,
		Title:    body.Title,
		OccursAt: body.OccursAt,
	})
	if err != nil {
		writeServiceError(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"activityId": created.ID})
}

// ListActivities handles GET /trips/{tripID}/activities.
// The response groups activities by day over the trip's whole date
// range; days with no activities are present with an empty list.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	groups, err := s.activities.ListGroupedByDay(r.Context(), tripID)
	if err != nil {
		writeServiceError(w, r, err, "trip not found")
		return
	}

	out := make([]dayActivitiesResponse, len(groups))
	for i, g := range groups {
		day := dayActivitiesResponse{
			Date:       openapi_types.Date{Time: g.Date.Time()},
			Activities: make([]activityResponse, len(g.Activities)),
		}
		for j, a := range g.Activities {
			day.Activities[j] = activityResponse{ID: a.ID, Title: a.Title, OccursAt: a.OccursAt}
		}
		out[i] = day
	}

	writeJSON(w, http.StatusOK, map[string]any{"activities": out})
}
