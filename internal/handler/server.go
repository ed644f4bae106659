// Package handler implements the HTTP handlers for the plann.er API.
// All handlers are methods on Server. Methods are split into
// domain-specific files (trip.go, activity.go, ...) but all share the
// same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/plannerapp/planner/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip, emailsToInvite []string) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
}

// ActivityServicer defines the business operations the activity handlers
// depend on.
type ActivityServicer interface {
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	ListGroupedByDay(ctx context.Context, tripID uuid.UUID) ([]domain.DayActivities, error)
}

// LinkServicer defines the business operations the link handlers depend on.
type LinkServicer interface {
	Create(ctx context.Context, link domain.Link) (domain.Link, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error)
}

// ParticipantServicer defines the business operations the participant
// handlers depend on.
type ParticipantServicer interface {
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
	Confirm(ctx context.Context, id uuid.UUID, name, email string) (domain.Participant, error)
}

// Server holds the services behind all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	trips        TripServicer
	activities   ActivityServicer
	links        LinkServicer
	participants ParticipantServicer

	openapi []byte // raw openapi.yaml served at /openapi.yaml; may be nil
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, activities ActivityServicer, links LinkServicer, participants ParticipantServicer, openapi []byte) *Server {
	return &Server{
		trips:        trips,
		activities:   activities,
		links:        links,
		participants: participants,
		openapi:      openapi,
	}
}

// Routes returns the chi router with every API endpoint registered.
// Middleware is wired by the caller (cmd/api/main.go).
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.CreateTrip)
		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Get("/activities", s.ListActivities)
			r.Post("/activities", s.CreateActivity)
			r.Get("/links", s.ListLinks)
			r.Post("/links", s.CreateLink)
			r.Get("/participants", s.ListParticipants)
		})
	})

	r.Post("/participants/{participantID}/confirm", s.ConfirmParticipant)

	return r
}

// GetOpenAPI serves the embedded OpenAPI document.
func (s *Server) GetOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(s.openapi)
}
