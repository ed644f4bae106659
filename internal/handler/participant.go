package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// confirmParticipantRequest is the body of
// POST /participants/{participantID}/confirm.
type confirmParticipantRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// participantResponse is the representation of a participant returned by
// the API.
type participantResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	IsConfirmed bool      `json:"is_confirmed"`
}

// ListParticipants handles GET /trips/{tripID}/participants.
func (s *Server) ListParticipants(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	participants, err := s.participants.ListByTripID(r.Context(), tripID)
	if err != nil {
		writeServiceError(w, r, err, "trip not found")
		return
	}

	out := make([]participantResponse, len(participants))
	for i, p := range participants {
		out[i] = participantResponse{ID: p.ID, Name: p.Name, Email: p.Email, IsConfirmed: p.IsConfirmed}
	}

	writeJSON(w, http.StatusOK, map[string]any{"participants": out})
}

// ConfirmParticipant handles POST /participants/{participantID}/confirm.
func (s *Server) ConfirmParticipant(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "participantID"))
	if err != nil {
		writeBadRequest(w, "invalid participant id")
		return
	}

	var body confirmParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	if _, err := s.participants.Confirm(r.Context(), id, body.Name, body.Email); err != nil {
		writeServiceError(w, r, err, "participant not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
