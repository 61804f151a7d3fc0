// Package view renders the front end's HTML pages.
// Templates are embedded at compile time, so the binary and its pages are
// always in sync.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/pkordes/trip-planner/web/internal/domain"
	"github.com/pkordes/trip-planner/web/internal/messages"
	"github.com/pkordes/trip-planner/web/internal/service"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page names accepted by Renderer.Render.
const (
	PageCreateTrip  = "create_trip"
	PageTripDetails = "trip_details"
	PageError       = "error"
)

// TripDetails is the data of the trip details page.
// A nil modal is rendered closed.
type TripDetails struct {
	service.TripPage

	CreateActivity *domain.Modal
	Activity       domain.ActivityInput
	CreateLink     *domain.Modal
	Link           domain.LinkInput
	InviteGuests   *domain.Modal
	Invite         domain.InviteInput
}

// CreateTrip is the data of the create trip page.
type CreateTrip struct {
	Confirm *domain.Modal
	Input   domain.TripInput
	// Emails is the raw guest list as typed, echoed back after a failure.
	Emails string
}

// ErrorPage is the data of the error page.
type ErrorPage struct {
	Status  int
	Message string
}

// Renderer executes the embedded page templates.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page against the shared layout.
func New(cat *messages.Catalog, loc *time.Location) (*Renderer, error) {
	f := NewFormatter(cat, loc)
	funcs := template.FuncMap{
		"day":        f.Day,
		"shortDate":  f.ShortDate,
		"longDate":   f.LongDate,
		"weekday":    f.Weekday,
		"clock":      f.Clock,
		"dateRange":  f.Range,
		"inputRange": f.InputRange,
		"isOpen": func(m *domain.Modal) bool {
			return m != nil && m.IsOpen()
		},
		"modalError": func(m *domain.Modal) string {
			if m == nil || m.Error == nil {
				return ""
			}
			return m.Error.Message
		},
	}

	r := &Renderer{pages: map[string]*template.Template{}}
	for _, page := range []string{PageCreateTrip, PageTripDetails, PageError} {
		t, err := template.New("").Funcs(funcs).ParseFS(templatesFS,
			"templates/layout.html",
			"templates/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("view.New: parse %s: %w", page, err)
		}
		r.pages[page] = t
	}
	return r, nil
}

// Render executes page into a buffer and writes it with status.
// Nothing is written when execution fails, so the caller can still send an
// error response.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("view.Renderer.Render: unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("view.Renderer.Render: %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
