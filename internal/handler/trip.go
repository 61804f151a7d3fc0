package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/web/internal/domain"
	"github.com/pkordes/trip-planner/web/internal/service"
	"github.com/pkordes/trip-planner/web/internal/view"
)

// GetTripDetails handles GET /trips/{tripId}.
// ?modal=create-activity|create-link|invite-guests opens that modal.
// Unknown modal names are ignored.
func (s *Server) GetTripDetails(w http.ResponseWriter, r *http.Request) {
	id, err := tripID(r)
	if err != nil {
		s.renderError(w, r, http.StatusNotFound, msgTripNotFound)
		return
	}

	data := view.TripDetails{
		CreateActivity: domain.NewModal(domain.ModalCreateActivity),
		CreateLink:     domain.NewModal(domain.ModalCreateLink),
		InviteGuests:   domain.NewModal(domain.ModalInviteGuests),
	}
	switch domain.ModalName(r.URL.Query().Get("modal")) {
	case domain.ModalCreateActivity:
		data.CreateActivity.Open()
	case domain.ModalCreateLink:
		data.CreateLink.Open()
	case domain.ModalInviteGuests:
		data.InviteGuests.Open()
	}
	s.renderTripDetails(w, r, id, http.StatusOK, data)
}

// PostActivity handles POST /trips/{tripId}/activities.
func (s *Server) PostActivity(w http.ResponseWriter, r *http.Request) {
	id, err := tripID(r)
	if err != nil {
		s.renderError(w, r, http.StatusNotFound, msgTripNotFound)
		return
	}
	var in domain.ActivityInput
	if !s.parseForm(w, r, &in) {
		return
	}
	in.TripID = id

	modal := openModal(domain.ModalCreateActivity)
	res := s.activities.Submit(r.Context(), modal, in)
	s.finishSubmit(w, r, id, res, view.TripDetails{CreateActivity: modal, Activity: in})
}

// PostLink handles POST /trips/{tripId}/links.
func (s *Server) PostLink(w http.ResponseWriter, r *http.Request) {
	id, err := tripID(r)
	if err != nil {
		s.renderError(w, r, http.StatusNotFound, msgTripNotFound)
		return
	}
	var in domain.LinkInput
	if !s.parseForm(w, r, &in) {
		return
	}
	in.TripID = id

	modal := openModal(domain.ModalCreateLink)
	res := s.links.Submit(r.Context(), modal, in)
	s.finishSubmit(w, r, id, res, view.TripDetails{CreateLink: modal, Link: in})
}

// PostInvite handles POST /trips/{tripId}/invites.
func (s *Server) PostInvite(w http.ResponseWriter, r *http.Request) {
	id, err := tripID(r)
	if err != nil {
		s.renderError(w, r, http.StatusNotFound, msgTripNotFound)
		return
	}
	var in domain.InviteInput
	if !s.parseForm(w, r, &in) {
		return
	}
	in.TripID = id

	modal := openModal(domain.ModalInviteGuests)
	res := s.invites.Submit(r.Context(), modal, in)
	s.finishSubmit(w, r, id, res, view.TripDetails{InviteGuests: modal, Invite: in})
}

// finishSubmit acts on a submission result.
// A success redirects to the details page, which reloads every section.
// A failure re-renders the page with the modal still open.
// A discarded result writes nothing: the client is already gone.
func (s *Server) finishSubmit(w http.ResponseWriter, r *http.Request, id uuid.UUID, res service.Result, data view.TripDetails) {
	switch res.Outcome {
	case service.OutcomeRefresh:
		http.Redirect(w, r, tripURL(id), http.StatusSeeOther)
	case service.OutcomeFailed:
		if data.CreateActivity == nil {
			data.CreateActivity = domain.NewModal(domain.ModalCreateActivity)
		}
		if data.CreateLink == nil {
			data.CreateLink = domain.NewModal(domain.ModalCreateLink)
		}
		if data.InviteGuests == nil {
			data.InviteGuests = domain.NewModal(domain.ModalInviteGuests)
		}
		s.renderTripDetails(w, r, id, http.StatusUnprocessableEntity, data)
	case service.OutcomeDiscarded:
		s.log.DebugContext(r.Context(), "submission discarded", "trip_id", id)
	}
}

// renderTripDetails loads the trip page and renders it on top of data.
func (s *Server) renderTripDetails(w http.ResponseWriter, r *http.Request, id uuid.UUID, status int, data view.TripDetails) {
	page, err := s.pages.Load(r.Context(), id)
	if err != nil {
		s.renderLoadError(w, r, id, err)
		return
	}
	data.TripPage = page
	s.renderPage(w, r, status, view.PageTripDetails, data)
}

func openModal(name domain.ModalName) *domain.Modal {
	m := domain.NewModal(name)
	m.Open()
	return m
}

func tripURL(id uuid.UUID) string {
	return "/trips/" + id.String()
}
