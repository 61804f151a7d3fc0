package handler

import (
	"net/http"
	"strings"

	"github.com/pkordes/trip-planner/web/internal/domain"
	"github.com/pkordes/trip-planner/web/internal/service"
	"github.com/pkordes/trip-planner/web/internal/view"
)

// GetCreateTrip handles GET /.
// The create form submits back here with ?modal=confirm-trip, which opens
// the confirmation modal with the typed values carried along.
func (s *Server) GetCreateTrip(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var in domain.TripInput
	if err := s.forms.Decode(&in, q); err != nil {
		s.renderError(w, r, http.StatusBadRequest, msgBadForm)
		return
	}

	data := view.CreateTrip{
		Confirm: domain.NewModal(domain.ModalConfirmTrip),
		Input:   in,
		Emails:  q.Get("emails_to_invite"),
	}
	if domain.ModalName(q.Get("modal")) == domain.ModalConfirmTrip {
		data.Confirm.Open()
	}
	s.renderPage(w, r, http.StatusOK, view.PageCreateTrip, data)
}

// PostTrip handles POST /trips and redirects to the new trip on success.
// If the API did not return a usable ID the trip cannot be shown, so the
// user lands back on the create page.
func (s *Server) PostTrip(w http.ResponseWriter, r *http.Request) {
	var in domain.TripInput
	if !s.parseForm(w, r, &in) {
		return
	}
	emails := r.PostForm.Get("emails_to_invite")
	in.EmailsToInvite = splitEmails(emails)

	modal := openModal(domain.ModalConfirmTrip)
	res := s.trips.Submit(r.Context(), modal, in)
	switch res.Outcome {
	case service.OutcomeRefresh:
		if res.ID == "" {
			s.log.ErrorContext(r.Context(), "trip created without a usable id", "destination", in.Destination)
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/trips/"+res.ID, http.StatusSeeOther)
	case service.OutcomeFailed:
		s.renderPage(w, r, http.StatusUnprocessableEntity, view.PageCreateTrip,
			view.CreateTrip{Confirm: modal, Input: in, Emails: emails})
	case service.OutcomeDiscarded:
		s.log.DebugContext(r.Context(), "trip creation discarded")
	}
}

// splitEmails splits the guest textarea on commas, semicolons and whitespace.
func splitEmails(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\n' || r == '\r' || r == '\t'
	})
}
