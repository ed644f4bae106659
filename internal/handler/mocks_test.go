package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/plannerapp/planner/internal/domain"
	"github.com/plannerapp/planner/internal/handler"
)

// Hand-written doubles for the servicer interfaces. Function fields keep
// each test self-contained: set only what the endpoint under test calls.

type mockTripService struct {
	create  func(ctx context.Context, trip domain.Trip, emailsToInvite []string) (domain.Trip, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	update  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
}

func (m *mockTripService) Create(ctx context.Context, trip domain.Trip, emailsToInvite []string) (domain.Trip, error) {
	return m.create(ctx, trip, emailsToInvite)
}
func (m *mockTripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}

type mockActivityService struct {
	create           func(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	listGroupedByDay func(ctx context.Context, tripID uuid.UUID) ([]domain.DayActivities, error)
}

func (m *mockActivityService) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	return m.create(ctx, activity)
}
func (m *mockActivityService) ListGroupedByDay(ctx context.Context, tripID uuid.UUID) ([]domain.DayActivities, error) {
	return m.listGroupedByDay(ctx, tripID)
}

type mockLinkService struct {
	create       func(ctx context.Context, link domain.Link) (domain.Link, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error)
}

func (m *mockLinkService) Create(ctx context.Context, link domain.Link) (domain.Link, error) {
	return m.create(ctx, link)
}
func (m *mockLinkService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error) {
	return m.listByTripID(ctx, tripID)
}

type mockParticipantService struct {
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
	confirm      func(ctx context.Context, id uuid.UUID, name, email string) (domain.Participant, error)
}

func (m *mockParticipantService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockParticipantService) Confirm(ctx context.Context, id uuid.UUID, name, email string) (domain.Participant, error) {
	return m.confirm(ctx, id, name, email)
}

var (
	_ handler.TripServicer        = (*mockTripService)(nil)
	_ handler.ActivityServicer    = (*mockActivityService)(nil)
	_ handler.LinkServicer        = (*mockLinkService)(nil)
	_ handler.ParticipantServicer = (*mockParticipantService)(nil)
)

// testServer bundles the mocks with a ready-to-hit router.
type testServer struct {
	trips        *mockTripService
	activities   *mockActivityService
	links        *mockLinkService
	participants *mockParticipantService
	router       http.Handler
}

func newTestServer() *testServer {
	ts := &testServer{
		trips:        &mockTripService{},
		activities:   &mockActivityService{},
		links:        &mockLinkService{},
		participants: &mockParticipantService{},
	}
	srv := handler.NewServer(ts.trips, ts.activities, ts.links, ts.participants, []byte("openapi: 3.0.3\n"))
	ts.router = srv.Routes()
	return ts
}

// do executes a request against the router and returns the recorder.
func (ts *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals the recorded JSON body into v.
func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

// errorBody mirrors the API error envelope.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
