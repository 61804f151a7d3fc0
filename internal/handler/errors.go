package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trip-planner/web/internal/domain"
	"github.com/pkordes/trip-planner/web/internal/view"
)

// Error page texts. They are page copy, not mapped submission errors.
const (
	msgTripNotFound    = "Viagem não encontrada."
	msgTripUnavailable = "Não foi possível carregar a viagem. Tente de novo em instantes."
	msgBadForm         = "Não foi possível ler o formulário."
	msgBodyTooLarge    = "O formulário enviado é grande demais."
)

// ErrorResponse is the JSON error body of the non-HTML endpoints.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail is a machine-readable code plus a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// notFoundBody returns an ErrorResponse for a missing resource.
func notFoundBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "not_found", Message: message}}
}

// upstreamBody returns an ErrorResponse for a failed call to the remote API.
func upstreamBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "upstream_error", Message: message}}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// tripID binds the {tripId} path parameter the way generated oapi-codegen
// wrappers do. Anything that is not a UUID never reaches the API.
func tripID(r *http.Request) (uuid.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "tripId", chi.URLParam(r, "tripId"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	return id, err
}

// renderError writes the HTML error page. If even that fails, it falls back
// to a plain-text response.
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if err := s.view.Render(w, status, view.PageError, view.ErrorPage{Status: status, Message: message}); err != nil {
		s.log.ErrorContext(r.Context(), "render error page", "error", err)
		http.Error(w, message, status)
	}
}

// renderPage writes page or, when rendering fails, a 500 error.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	if err := s.view.Render(w, status, page, data); err != nil {
		s.log.ErrorContext(r.Context(), "render page", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// renderLoadError maps a trip page load failure to an error page.
func (s *Server) renderLoadError(w http.ResponseWriter, r *http.Request, id uuid.UUID, err error) {
	if r.Context().Err() != nil {
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		s.renderError(w, r, http.StatusNotFound, msgTripNotFound)
		return
	}
	s.log.ErrorContext(r.Context(), "load trip page", "trip_id", id, "error", err)
	s.renderError(w, r, http.StatusBadGateway, msgTripUnavailable)
}

// parseForm parses the posted form and decodes it into dst.
// It writes the error response itself and reports whether decoding succeeded.
func (s *Server) parseForm(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.renderError(w, r, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
			return false
		}
		s.renderError(w, r, http.StatusBadRequest, msgBadForm)
		return false
	}
	if err := s.forms.Decode(dst, r.PostForm); err != nil {
		s.renderError(w, r, http.StatusBadRequest, msgBadForm)
		return false
	}
	return true
}
