package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/plannerapp/planner/internal/domain"
)

// createLinkRequest is the body of POST /trips/{tripID}/links.
type createLinkRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// linkResponse is the representation of a shared link returned by the API.
type linkResponse struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	URL   string    `json:"url"`
}

// CreateLink handles POST /trips/{tripID}/links.
func (s *Server) CreateLink(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	var body createLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	created, err := s.links.Create(r.Context(), domain.Link{
		TripID: tripID,
		Title:  body.Title,
		URL:    body.URL,
	})
	if err != nil {
		writeServiceError(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"linkId": created.ID})
}

// ListLinks handles GET /trips/{tripID}/links.
func (s *Server) ListLinks(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	links, err := s.links.ListByTripID(r.Context(), tripID)
	if err != nil {
		writeServiceError(w, r, err, "trip not found")
		return
	}

	out := make([]linkResponse, len(links))
	for i, l := range links {
		out[i] = linkResponse{ID: l.ID, Title: l.Title, URL: l.URL}
	}

	writeJSON(w, http.StatusOK, map[string]any{"links": out})
}
