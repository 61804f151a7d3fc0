package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pkordes/trip-planner/web/internal/domain"
)

// TripReader defines the API reads the trip details page depends on.
// *apiclient.Client satisfies it.
type TripReader interface {
	GetTrip(ctx context.Context, tripID uuid.UUID) (domain.Trip, error)
	ListActivities(ctx context.Context, tripID uuid.UUID) ([]domain.ActivityDay, error)
	ListLinks(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error)
	ListParticipants(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
}

// TripPage is everything the trip details page renders.
type TripPage struct {
	Trip         domain.Trip
	Days         []domain.ActivityDay
	Links        []domain.Link
	Participants []domain.Participant
}

// TripPageService loads trip details pages.
type TripPageService struct {
	api TripReader
	log *slog.Logger
}

// NewTripPageService constructs a TripPageService backed by api.
func NewTripPageService(api TripReader, log *slog.Logger) *TripPageService {
	if log == nil {
		log = slog.Default()
	}
	return &TripPageService{api: api, log: log}
}

// Load fetches the trip and its three lists in parallel, one request each.
//
// A failed trip fetch fails the page: the error matches domain.ErrNotFound
// when the trip does not exist. A failed list fetch is logged and leaves
// that section empty.
func (s *TripPageService) Load(ctx context.Context, tripID uuid.UUID) (TripPage, error) {
	var page TripPage

	days := NewListFetcher[domain.ActivityDay](s.api.ListActivities)
	links := NewListFetcher[domain.Link](s.api.ListLinks)
	participants := NewListFetcher[domain.Participant](s.api.ListParticipants)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		trip, err := s.api.GetTrip(gctx, tripID)
		if err != nil {
			return err
		}
		page.Trip = trip
		return nil
	})
	g.Go(func() error { s.syncSection(gctx, "activities", tripID, days.Sync); return nil })
	g.Go(func() error { s.syncSection(gctx, "links", tripID, links.Sync); return nil })
	g.Go(func() error { s.syncSection(gctx, "participants", tripID, participants.Sync); return nil })

	if err := g.Wait(); err != nil {
		return TripPage{}, fmt.Errorf("service.TripPageService.Load: %w", err)
	}

	page.Days = days.Items()
	page.Links = links.Items()
	page.Participants = participants.Items()
	return page, nil
}

func (s *TripPageService) syncSection(ctx context.Context, section string, tripID uuid.UUID, sync func(context.Context, uuid.UUID) error) {
	if err := sync(ctx, tripID); err != nil && ctx.Err() == nil {
		s.log.WarnContext(ctx, "trip page section unavailable",
			"section", section,
			"trip_id", tripID,
			"error", err,
		)
	}
}
