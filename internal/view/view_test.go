package view_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/web/internal/domain"
	"github.com/pkordes/trip-planner/web/internal/messages"
	"github.com/pkordes/trip-planner/web/internal/service"
	"github.com/pkordes/trip-planner/web/internal/view"
)

func newRenderer(t *testing.T) *view.Renderer {
	t.Helper()
	r, err := view.New(messages.MustLoad(), time.UTC)
	require.NoError(t, err)
	return r
}

func tripPage() service.TripPage {
	return service.TripPage{
		Trip: domain.Trip{
			ID:          uuid.MustParse("3b0a8f6c-2f4e-4d8e-9b59-5b1f0f0d9a11"),
			Destination: "Florianópolis",
			StartsAt:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			EndsAt:      time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		Links: []domain.Link{{ID: "l1", Title: "Reserva do hotel", URL: "https://hotel.example"}},
	}
}

func TestRender_TripDetails_ModalsClosed(t *testing.T) {
	rec := httptest.NewRecorder()

	err := newRenderer(t).Render(rec, http.StatusOK, view.PageTripDetails, view.TripDetails{TripPage: tripPage()})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "Florianópolis")
	assert.Contains(t, body, "1 a 15 de jun de 2025")
	assert.Contains(t, body, "Reserva do hotel")
	assert.NotContains(t, body, "Salvar link")
}

func TestRender_TripDetails_ModalWithError(t *testing.T) {
	m := domain.NewModal(domain.ModalCreateLink)
	m.Open()
	m.Error = &domain.SubmissionError{Message: "URL inválido."}
	rec := httptest.NewRecorder()

	err := newRenderer(t).Render(rec, http.StatusUnprocessableEntity, view.PageTripDetails, view.TripDetails{
		TripPage:   tripPage(),
		CreateLink: m,
		Link:       domain.LinkInput{Title: "Hotel", URL: "nope"},
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Salvar link")
	assert.Contains(t, body, "* URL inválido.")
	assert.Contains(t, body, `value="nope"`)
}

func TestRender_InviteModalShowsTripWindow(t *testing.T) {
	m := domain.NewModal(domain.ModalInviteGuests)
	m.Open()
	rec := httptest.NewRecorder()

	err := newRenderer(t).Render(rec, http.StatusOK, view.PageTripDetails, view.TripDetails{TripPage: tripPage(), InviteGuests: m})

	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), "15 de jun de 2025")
	assert.Contains(t, rec.Body.String(), "Confirmar minha presença")
}

func TestRender_CreateTrip_ConfirmModal(t *testing.T) {
	m := domain.NewModal(domain.ModalConfirmTrip)
	m.Open()
	rec := httptest.NewRecorder()

	err := newRenderer(t).Render(rec, http.StatusOK, view.PageCreateTrip, view.CreateTrip{
		Confirm: m,
		Input:   domain.TripInput{Destination: "Recife", StartsAt: "2025-06-01", EndsAt: "2025-06-15"},
	})

	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), "Confirmar criação da viagem")
	assert.Contains(t, rec.Body.String(), "1 de jun até 15 de jun de 2025")
}

func TestRender_UnknownPage(t *testing.T) {
	rec := httptest.NewRecorder()

	err := newRenderer(t).Render(rec, http.StatusOK, "nope", nil)

	assert.Error(t, err)
	assert.Empty(t, rec.Body.String())
}
