// Package client is a typed HTTP client for the plann.er API, used by
// the planner CLI. Requests and responses mirror the handler package's
// wire types.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/plannerapp/planner/internal/domain"
)

// Client talks to one plann.er API server.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for the API at baseURL (e.g. "http://localhost:8080").
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// CreateTripParams carries the fields of a create-trip call.
type CreateTripParams struct {
	Destination    string
	StartsAt       domain.Day
	EndsAt         domain.Day
	EmailsToInvite []string
}

// CreateTrip creates a trip and returns its id.
func (c *Client) CreateTrip(ctx context.Context, p CreateTripParams) (uuid.UUID, error) {
	body := map[string]any{
		"destination":      p.Destination,
		"starts_at":        p.StartsAt.String(),
		"ends_at":          p.EndsAt.String(),
		"emails_to_invite": p.EmailsToInvite,
	}
	var out struct {
		TripID uuid.UUID `json:"tripId"`
	}
	if err := c.do(ctx, http.MethodPost, "/trips", body, http.StatusCreated, &out); err != nil {
		return uuid.UUID{}, err
	}
	return out.TripID, nil
}

// GetTrip fetches a trip by id.
func (c *Client) GetTrip(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	var out struct {
		ID          uuid.UUID          `json:"id"`
		Destination string             `json:"destination"`
		StartsAt    openapi_types.Date `json:"starts_at"`
		EndsAt      openapi_types.Date `json:"ends_at"`
	}
	if err := c.do(ctx, http.MethodGet, "/trips/"+id.String(), nil, http.StatusOK, &out); err != nil {
		return domain.Trip{}, err
	}
	return domain.Trip{
		ID:          out.ID,
		Destination: out.Destination,
		StartsAt:    domain.DayOf(out.StartsAt.Time),
		EndsAt:      domain.DayOf(out.EndsAt.Time),
	}, nil
}

// UpdateTrip overwrites a trip's destination and date range.
func (c *Client) UpdateTrip(ctx context.Context, trip domain.Trip) error {
	body := map[string]any{
		"destination": trip.Destination,
		"starts_at":   trip.StartsAt.String(),
		"ends_at":     trip.EndsAt.String(),
	}
	return c.do(ctx, http.MethodPut, "/trips/"+trip.ID.String(), body, http.StatusOK, nil)
}

// Activities fetches the day-grouped activity listing for a trip —
// exactly the groups input the itinerary aggregator consumes.
func (c *Client) Activities(ctx context.Context, tripID uuid.UUID) ([]domain.DayActivities, error) {
	var out struct {
		Activities []struct {
			Date       openapi_types.Date `json:"date"`
			Activities []struct {
				ID       uuid.UUID `json:"id"`
				Title    string    `json:"title"`
				OccursAt time.Time `json:"occurs_at"`
			} `json:"activities"`
		} `json:"activities"`
	}
	if err := c.do(ctx, http.MethodGet, "/trips/"+tripID.String()+"/activities", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}

	groups := make([]domain.DayActivities, len(out.Activities))
	for i, g := range out.Activities {
		group := domain.DayActivities{
			Date:       domain.DayOf(g.Date.Time),
			Activities: make([]domain.Activity, len(g.Activities)),
		}
		for j, a := range g.Activities {
			group.Activities[j] = domain.Activity{ID: a.ID, TripID: tripID, Title: a.Title, OccursAt: a.OccursAt}
		}
		groups[i] = group
	}
	return groups, nil
}

// CreateActivity adds an activity to a trip and returns its id.
func (c *Client) CreateActivity(ctx context.Context, tripID uuid.UUID, title string, occursAt time.Time) (uuid.UUID, error) {
	body := map[string]any{"title": title, "occurs_at": occursAt.Format(time.RFC3339)}
	var out struct {
		ActivityID uuid.UUID `json:"activityId"`
	}
	if err := c.do(ctx, http.MethodPost, "/trips/"+tripID.String()+"/activities", body, http.StatusCreated, &out); err != nil {
		return uuid.UUID{}, err
	}
	return out.ActivityID, nil
}

// Links fetches a trip's shared links.
func (c *Client) Links(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error) {
	var out struct {
		Links []domain.Link `json:"links"`
	}
	if err := c.do(ctx, http.MethodGet, "/trips/"+tripID.String()+"/links", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out.Links, nil
}

// CreateLink shares a link on a trip and returns its id.
func (c *Client) CreateLink(ctx context.Context, tripID uuid.UUID, title, url string) (uuid.UUID, error) {
	body := map[string]any{"title": title, "url": url}
	var out struct {
		LinkID uuid.UUID `json:"linkId"`
	}
	if err := c.do(ctx, http.MethodPost, "/trips/"+tripID.String()+"/links", body, http.StatusCreated, &out); err != nil {
		return uuid.UUID{}, err
	}
	return out.LinkID, nil
}

// Participants fetches a trip's participants.
func (c *Client) Participants(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	var out struct {
		Participants []struct {
			ID          uuid.UUID `json:"id"`
			Name        string    `json:"name"`
			Email       string    `json:"email"`
			IsConfirmed bool      `json:"is_confirmed"`
		} `json:"participants"`
	}
	if err := c.do(ctx, http.MethodGet, "/trips/"+tripID.String()+"/participants", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	participants := make([]domain.Participant, len(out.Participants))
	for i, p := range out.Participants {
		participants[i] = domain.Participant{ID: p.ID, TripID: tripID, Name: p.Name, Email: p.Email, IsConfirmed: p.IsConfirmed}
	}
	return participants, nil
}

// ConfirmParticipant confirms a participant's attendance.
func (c *Client) ConfirmParticipant(ctx context.Context, participantID uuid.UUID, name, email string) error {
	body := map[string]any{"name": name, "email": email}
	return c.do(ctx, http.MethodPost, "/participants/"+participantID.String()+"/confirm", body, http.StatusNoContent, nil)
}

// do runs one JSON round trip. A non-matching status is decoded into the
// API's error body when possible and returned as an *APIError.
func (c *Client) do(ctx context.Context, method, path string, body any, wantStatus int, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return decodeAPIError(resp)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("client: decode response: %w", err)
		}
	}
	return nil
}

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (%d %s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error (%d)", e.Status)
}

// decodeAPIError reads the server's {"error":{...}} body; a body that
// does not parse still yields an APIError with the status code.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&body); err == nil {
		apiErr.Code = body.Error.Code
		apiErr.Message = body.Error.Message
	}
	return apiErr
}
