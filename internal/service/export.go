package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/web/internal/domain"
)

// ItineraryReader defines the API reads the export depends on.
type ItineraryReader interface {
	ListActivities(ctx context.Context, tripID uuid.UUID) ([]domain.ActivityDay, error)
	ListLinks(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error)
}

// ExportService assembles a flat itinerary of one trip.
type ExportService struct {
	api ItineraryReader
}

// NewExportService constructs an ExportService backed by api.
func NewExportService(api ItineraryReader) *ExportService {
	return &ExportService{api: api}
}

// Export returns one row per activity followed by one row per link, each
// group in API order. Unlike the details page, any fetch error fails the
// export so a partial itinerary is never produced.
func (s *ExportService) Export(ctx context.Context, tripID uuid.UUID) ([]domain.ExportRow, error) {
	days, err := s.api.ListActivities(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	links, err := s.api.ListLinks(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := []domain.ExportRow{}
	for _, day := range days {
		for _, a := range day.Activities {
			rows = append(rows, domain.ExportRow{
				Kind:   domain.ExportActivity,
				ID:     a.ID,
				Title:  a.Title,
				Detail: a.OccursAt.UTC().Format(time.RFC3339),
			})
		}
	}
	for _, l := range links {
		rows = append(rows, domain.ExportRow{
			Kind:   domain.ExportLink,
			ID:     l.ID,
			Title:  l.Title,
			Detail: l.URL,
		})
	}
	return rows, nil
}
