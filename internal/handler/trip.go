package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/plannerapp/planner/internal/domain"
)

// createTripRequest is the body of POST /trips. Dates are date-only
// (openapi_types.Date marshals as "2006-01-02").
type createTripRequest struct {
	Destination    string             `json:"destination"`
	StartsAt       openapi_types.Date `json:"starts_at"`
	EndsAt         openapi_types.Date `json:"ends_at"`
	EmailsToInvite []string           `json:"emails_to_invite"`
}

// updateTripRequest is the body of PUT /trips/{tripID}.
type updateTripRequest struct {
	Destination string             `json:"destination"`
	StartsAt    openapi_types.Date `json:"starts_at"`
	EndsAt      openapi_types.Date `json:"ends_at"`
}

// tripResponse is the representation of a trip returned by the API.
type tripResponse struct {
	ID          uuid.UUID          `json:"id"`
	Destination string             `json:"destination"`
	StartsAt    openapi_types.Date `json:"starts_at"`
	EndsAt      openapi_types.Date `json:"ends_at"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// CreateTrip handles POST /trips.
// On success it returns 201 with {"tripId": "..."} — clients fetch the
// full record afterwards.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var body createTripRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	trip := domain.Trip{
		Destination: body.Destination,
		StartsAt:    domain.DayOf(body.StartsAt.Time),
		EndsAt:      domain.DayOf(body.EndsAt.Time),
	}

	created, err := s.trips.Create(r.Context(), trip, body.EmailsToInvite)
	if err != nil {
		writeServiceError(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"tripId": created.ID})
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// UpdateTrip handles PUT /trips/{tripID}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	var body updateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	trip := domain.Trip{
		ID:          id,
		Destination: body.Destination,
		StartsAt:    domain.DayOf(body.StartsAt.Time),
		EndsAt:      domain.DayOf(body.EndsAt.Time),
	}

	updated, err := s.trips.Update(r.Context(), trip)
	if err != nil {
		writeServiceError(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// --- mapping helpers --------------------------------------------------------

// tripIDParam parses the {tripID} path parameter, writing a 422 on
// malformed UUIDs. The bool result reports whether parsing succeeded.
func tripIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "tripID"))
	if err != nil {
		writeBadRequest(w, "invalid trip id")
		return uuid.UUID{}, false
	}
	return id, true
}

// tripToResponse converts a domain.Trip into its API representation.
func tripToResponse(t domain.Trip) tripResponse {
	return tripResponse{
		ID:          t.ID,
		Destination: t.Destination,
		StartsAt:    openapi_types.Date{Time: t.StartsAt.Time()},
		EndsAt:      openapi_types.Date{Time: t.EndsAt.Time()},
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
