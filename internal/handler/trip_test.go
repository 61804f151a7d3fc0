package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/web/internal/domain"
	"github.com/pkordes/trip-planner/web/internal/handler"
	"github.com/pkordes/trip-planner/web/internal/service"
	apitest "github.com/pkordes/trip-planner/web/testutil"
)

const tripPath = "/trips/3b0a8f6c-2f4e-4d8e-9b59-5b1f0f0d9a11"

// ---- GET /trips/{tripId} ---------------------------------------------------

func TestGetTripDetails_RendersSections(t *testing.T) {
	api := apitest.NewAPIServer(t)
	serveTrip(api)

	rec := get(t, newHTTPHandler(t, api), tripPath)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Florianópolis")
	assert.Contains(t, body, "Reserva do hotel")
	assert.NotContains(t, body, "Salvar link")
	assert.Equal(t, 1, api.CallCount(http.MethodGet, tripPath))
	assert.Equal(t, 1, api.CallCount(http.MethodGet, tripPath+"/links"))
}

func TestGetTripDetails_OpensModalFromQuery(t *testing.T) {
	api := apitest.NewAPIServer(t)
	serveTrip(api)
	h := newHTTPHandler(t, api)

	tests := map[string]string{
		"create-activity": "Salvar atividade",
		"create-link":     "Salvar link",
		"invite-guests":   "Confirmar minha presença",
	}
	for modal, button := range tests {
		t.Run(modal, func(t *testing.T) {
			rec := get(t, h, tripPath+"?modal="+modal)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), button)
		})
	}
}

func TestGetTripDetails_UnknownModalIgnored(t *testing.T) {
	api := apitest.NewAPIServer(t)
	serveTrip(api)

	rec := get(t, newHTTPHandler(t, api), tripPath+"?modal=nope")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "class=\"overlay\"")
}

func TestGetTripDetails_NotFound(t *testing.T) {
	api := apitest.NewAPIServer(t)
	api.Handle("GET /trips/{tripId}", apitest.Raw(http.StatusNotFound, `{"message":"Trip not found"}`))

	rec := get(t, newHTTPHandler(t, api), tripPath)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Viagem não encontrada.")
}

func TestGetTripDetails_APIDown(t *testing.T) {
	api := apitest.NewAPIServer(t)
	api.Handle("GET /trips/{tripId}", apitest.Raw(http.StatusInternalServerError, `{"message":"Internal server error"}`))

	rec := get(t, newHTTPHandler(t, api), tripPath)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGetTripDetails_ListFailureLeavesSectionEmpty(t *testing.T) {
	api := apitest.NewAPIServer(t)
	api.Handle("GET /trips/{tripId}", apitest.JSON(http.StatusOK, map[string]any{"trip": tripFixture()}))
	api.Handle("GET /trips/{tripId}/activities", apitest.JSON(http.StatusOK, map[string]any{"activities": []any{}}))
	api.Handle("GET /trips/{tripId}/participants", apitest.JSON(http.StatusOK, map[string]any{"participants": []any{}}))
	// links is not registered: the fake answers 404.

	rec := get(t, newHTTPHandler(t, api), tripPath)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Florianópolis")
	assert.NotContains(t, rec.Body.String(), "Reserva do hotel")
}

func TestTripRoutes_NonUUIDNeverReachesAPI(t *testing.T) {
	api := apitest.NewAPIServer(t)
	serveTrip(api)
	h := newHTTPHandler(t, api)

	getRec := get(t, h, "/trips/not-a-uuid")
	postRec := postForm(t, h, "/trips/not-a-uuid/links", url.Values{"title": {"Hotel"}, "urlInput": {"https://x.example"}})

	assert.Equal(t, http.StatusNotFound, getRec.Code)
	assert.Contains(t, getRec.Body.String(), "Viagem não encontrada.")
	assert.Equal(t, http.StatusNotFound, postRec.Code)
	assert.Empty(t, api.Calls())
}

// ---- POST /trips/{tripId}/links --------------------------------------------

func TestPostLink_TitleTooShort(t *testing.T) {
	api := apitest.NewAPIServer(t)
	serveTrip(api)
	api.Handle("POST /trips/{tripId}/links", apitest.Raw(http.StatusBadRequest,
		`{"message":"Invalid input","errors":{"title":["String must contain at least 4 character(s)"]}}`))

	rec := postForm(t, newHTTPHandler(t, api), tripPath+"/links", url.Values{
		"title":    {"abc"},
		"urlInput": {"https://hotel.example"},
	})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "* O título do link deve conter pelo menos 4 caracteres.")
	assert.Contains(t, body, "Salvar link")
	assert.Contains(t, body, `value="abc"`)
	assert.Equal(t, 1, api.CallCount(http.MethodPost, tripPath+"/links"))
}

func TestPostLink_SendsFormFieldsAsJSON(t *testing.T) {
	api := apitest.NewAPIServer(t)
	api.Handle("POST /trips/{tripId}/links", apitest.JSON(http.StatusCreated, map[string]string{"linkId": "l2"}))

	rec := postForm(t, newHTTPHandler(t, api), tripPath+"/links", url.Values{
		"title":    {"Reserva do hotel"},
		"urlInput": {"https://hotel.example"},
	})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	calls := api.Calls()
	require.Len(t, calls, 1)
	var sent map[string]string
	require.NoError(t, json.Unmarshal(calls[0].Body, &sent))
	assert.Equal(t, map[string]string{"title": "Reserva do hotel", "url": "https://hotel.example"}, sent)
}

// ---- POST /trips/{tripId}/activities ---------------------------------------

func TestPostActivity_OutsideTripDates(t *testing.T) {
	api := apitest.NewAPIServer(t)
	serveTrip(api)
	api.Handle("POST /trips/{tripId}/activities", apitest.Raw(http.StatusBadRequest, `{"message":"Invalid activity date."}`))

	rec := postForm(t, newHTTPHandler(t, api), tripPath+"/activities", url.Values{
		"title":     {"Praia da Joaquina"},
		"occurs_at": {"2025-07-01T10:00"},
	})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "* Data fora da atividade!")
	assert.Contains(t, rec.Body.String(), "Salvar atividade")
}

func TestPostActivity_Success_Redirects(t *testing.T) {
	api := apitest.NewAPIServer(t)
	api.Handle("POST /trips/{tripId}/activities", apitest.JSON(http.StatusCreated, map[string]string{"activityId": "a1"}))

	rec := postForm(t, newHTTPHandler(t, api), tripPath+"/activities", url.Values{
		"title":     {"Praia da Joaquina"},
		"occurs_at": {"2025-06-02T10:00"},
	})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, tripPath, rec.Header().Get("Location"))
}

// Any 2xx from the API means the resource was stored, so the page reloads
// even when the success answer carries no body.
func TestPostChildResource_SuccessWithoutBody_Redirects(t *testing.T) {
	tests := []struct {
		name   string
		route  string
		status int
		form   url.Values
	}{
		{"invite 204", "invites", http.StatusNoContent, url.Values{"email": {"ana@example.com"}}},
		{"invite 201 empty", "invites", http.StatusCreated, url.Values{"email": {"ana@example.com"}}},
		{"link 204", "links", http.StatusNoContent, url.Values{"title": {"Hotel"}, "urlInput": {"https://x.example"}}},
		{"link 201 empty", "links", http.StatusCreated, url.Values{"title": {"Hotel"}, "urlInput": {"https://x.example"}}},
		{"activity 201 empty", "activities", http.StatusCreated, url.Values{"title": {"Praia"}, "occurs_at": {"2025-06-02T10:00"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := apitest.NewAPIServer(t)
			serveTrip(api)
			api.Handle("POST /trips/{tripId}/"+tt.route, apitest.Raw(tt.status, ""))

			rec := postForm(t, newHTTPHandler(t, api), tripPath+"/"+tt.route, tt.form)

			require.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tripPath, rec.Header().Get("Location"))
			assert.NotContains(t, rec.Body.String(), "Um erro aconteceu, tente de novo!")
			assert.Equal(t, 1, api.CallCount(http.MethodPost, tripPath+"/"+tt.route))
		})
	}
}

// ---- POST /trips/{tripId}/invites ------------------------------------------

func TestPostInvite_Success_RedirectsOnce(t *testing.T) {
	api := apitest.NewAPIServer(t)
	serveTrip(api)
	api.Handle("POST /trips/{tripId}/invites", apitest.JSON(http.StatusCreated, map[string]string{"participantId": "p1"}))

	rec := postForm(t, newHTTPHandler(t, api), tripPath+"/invites", url.Values{
		"nome":  {"Ana"},
		"email": {"ana@example.com"},
	})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, tripPath, rec.Header().Get("Location"))
	assert.NotContains(t, rec.Body.String(), "E-mail inválido.")
	assert.Equal(t, 1, api.CallCount(http.MethodPost, tripPath+"/invites"))
	assert.Equal(t, 0, api.CallCount(http.MethodGet, tripPath))
}

func TestPostInvite_InvalidEmail_ThenReopenIsClean(t *testing.T) {
	api := apitest.NewAPIServer(t)
	serveTrip(api)
	api.Handle("POST /trips/{tripId}/invites", apitest.Raw(http.StatusBadRequest,
		`{"message":"Invalid input","errors":{"email":["Invalid email"]}}`))
	h := newHTTPHandler(t, api)

	failed := postForm(t, h, tripPath+"/invites", url.Values{"email": {"ana"}})
	reopened := get(t, h, tripPath+"?modal=invite-guests")

	require.Equal(t, http.StatusUnprocessableEntity, failed.Code)
	assert.Contains(t, failed.Body.String(), "E-mail inválido.")
	require.Equal(t, http.StatusOK, reopened.Code)
	assert.Contains(t, reopened.Body.String(), "Confirmar minha presença")
	assert.NotContains(t, reopened.Body.String(), "E-mail inválido.")
}

func TestPostLink_Discarded_WritesNothing(t *testing.T) {
	links := &mockSubmitter[domain.LinkInput]{
		submit: func(context.Context, *domain.Modal, domain.LinkInput) service.Result {
			return service.Result{Outcome: service.OutcomeDiscarded}
		},
	}
	h := handler.NewServer(handler.Deps{Links: links, View: newRenderer(t)}).Handler()

	rec := postForm(t, h, tripPath+"/links", url.Values{"title": {"Hotel"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Empty(t, rec.Header().Get("Location"))
}

func TestPostLink_PassesTripIDAndOpenModal(t *testing.T) {
	var got domain.LinkInput
	var modalOpen bool
	links := &mockSubmitter[domain.LinkInput]{
		submit: func(_ context.Context, m *domain.Modal, in domain.LinkInput) service.Result {
			got = in
			modalOpen = m.IsOpen()
			return service.Result{Outcome: service.OutcomeRefresh, ID: "l1"}
		},
	}
	h := handler.NewServer(handler.Deps{Links: links, View: newRenderer(t)}).Handler()

	rec := postForm(t, h, tripPath+"/links", url.Values{"title": {"Hotel"}, "urlInput": {"https://x.example"}})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, tripID, got.TripID)
	assert.Equal(t, "https://x.example", got.URL)
	assert.True(t, modalOpen)
}
