// Package handler implements the HTTP handlers of the trip planner front end.
// All handlers are methods on Server. Methods are split into page-specific
// files (trip.go, create_trip.go, etc.) but all share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/form"
	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/web/internal/domain"
	"github.com/pkordes/trip-planner/web/internal/service"
)

// TripPageLoader loads the data of the trip details page.
// Defining the interface here, in the consumer package, lets handler tests
// inject a mock without an API server.
type TripPageLoader interface {
	Load(ctx context.Context, tripID uuid.UUID) (service.TripPage, error)
}

// Exporter builds the itinerary export of one trip.
type Exporter interface {
	Export(ctx context.Context, tripID uuid.UUID) ([]domain.ExportRow, error)
}

// Submitter runs one form submission against a modal.
// *service.Submission[T] satisfies it.
type Submitter[T any] interface {
	Submit(ctx context.Context, modal *domain.Modal, in T) service.Result
}

// Renderer writes an HTML page. *view.Renderer satisfies it.
type Renderer interface {
	Render(w http.ResponseWriter, status int, page string, data any) error
}

// Deps lists everything a Server needs. Every field is required except Log.
type Deps struct {
	Pages      TripPageLoader
	Export     Exporter
	Trips      Submitter[domain.TripInput]
	Activities Submitter[domain.ActivityInput]
	Links      Submitter[domain.LinkInput]
	Invites    Submitter[domain.InviteInput]
	View       Renderer
	Log        *slog.Logger
}

// Server serves the front end's pages and form posts.
type Server struct {
	pages      TripPageLoader
	export     Exporter
	trips      Submitter[domain.TripInput]
	activities Submitter[domain.ActivityInput]
	links      Submitter[domain.LinkInput]
	invites    Submitter[domain.InviteInput]
	view       Renderer
	forms      *form.Decoder
	log        *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(d Deps) *Server {
	log := d.Log
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		pages:      d.Pages,
		export:     d.Export,
		trips:      d.Trips,
		activities: d.Activities,
		links:      d.Links,
		invites:    d.Invites,
		view:       d.View,
		forms:      form.NewDecoder(),
		log:        log,
	}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(Deps{})
}

// Routes registers every front end route on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/healthz", s.GetHealth)
	r.Get("/", s.GetCreateTrip)
	r.Post("/trips", s.PostTrip)
	r.Route("/trips/{tripId}", func(r chi.Router) {
		r.Get("/", s.GetTripDetails)
		r.Post("/activities", s.PostActivity)
		r.Post("/links", s.PostLink)
		r.Post("/invites", s.PostInvite)
		r.Get("/export", s.GetExport)
	})
}

// Handler returns a router with only the front end routes mounted.
// main.go adds middleware around it; tests use it directly.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	s.Routes(r)
	return r
}
