package handler_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/web/internal/apiclient"
	"github.com/pkordes/trip-planner/web/internal/domain"
	"github.com/pkordes/trip-planner/web/internal/handler"
	"github.com/pkordes/trip-planner/web/internal/messages"
	"github.com/pkordes/trip-planner/web/internal/service"
	"github.com/pkordes/trip-planner/web/internal/view"
	apitest "github.com/pkordes/trip-planner/web/testutil"
)

var tripID = uuid.MustParse("3b0a8f6c-2f4e-4d8e-9b59-5b1f0f0d9a11")

// newHTTPHandler wires a Server against the fake API the same way main.go
// wires it against the real one.
func newHTTPHandler(t *testing.T, api *apitest.APIServer) http.Handler {
	t.Helper()
	return newLoggedHTTPHandler(t, api, nil)
}

// newLoggedHTTPHandler is newHTTPHandler with the Server logging to log.
func newLoggedHTTPHandler(t *testing.T, api *apitest.APIServer, log *slog.Logger) http.Handler {
	t.Helper()

	client, err := apiclient.New(api.URL)
	require.NoError(t, err)
	cat := messages.MustLoad()

	return handler.NewServer(handler.Deps{
		Pages:      service.NewTripPageService(client, nil),
		Export:     service.NewExportService(client),
		Trips:      service.NewSubmission[domain.TripInput](service.CreateTripWriter(client), service.TripErrors, cat),
		Activities: service.NewSubmission[domain.ActivityInput](client.CreateActivity, service.ActivityErrors, cat),
		Links:      service.NewSubmission[domain.LinkInput](client.CreateLink, service.LinkErrors, cat),
		Invites:    service.NewSubmission[domain.InviteInput](client.CreateInvite, service.InviteErrors, cat),
		View:       newRenderer(t),
		Log:        log,
	}).Handler()
}

func newRenderer(t *testing.T) *view.Renderer {
	t.Helper()
	r, err := view.New(messages.MustLoad(), time.UTC)
	require.NoError(t, err)
	return r
}

func tripFixture() domain.Trip {
	return domain.Trip{
		ID:          tripID,
		Destination: "Florianópolis",
		StartsAt:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		IsConfirmed: true,
	}
}

// serveTrip registers the four reads of the trip details page.
func serveTrip(api *apitest.APIServer) {
	api.Handle("GET /trips/{tripId}", apitest.JSON(http.StatusOK, map[string]any{"trip": tripFixture()}))
	api.Handle("GET /trips/{tripId}/activities", apitest.JSON(http.StatusOK, map[string]any{"activities": []any{}}))
	api.Handle("GET /trips/{tripId}/links", apitest.JSON(http.StatusOK, map[string]any{
		"links": []domain.Link{{ID: "l1", Title: "Reserva do hotel", URL: "https://hotel.example"}},
	}))
	api.Handle("GET /trips/{tripId}/participants", apitest.JSON(http.StatusOK, map[string]any{"participants": []any{}}))
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func postForm(t *testing.T, h http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// mockSubmitter is a test double for handler.Submitter.
type mockSubmitter[T any] struct {
	submit func(ctx context.Context, modal *domain.Modal, in T) service.Result
}

func (m *mockSubmitter[T]) Submit(ctx context.Context, modal *domain.Modal, in T) service.Result {
	return m.submit(ctx, modal, in)
}

// compile-time check: mockSubmitter must satisfy handler.Submitter.
var _ handler.Submitter[domain.LinkInput] = (*mockSubmitter[domain.LinkInput])(nil)
