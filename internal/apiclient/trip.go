package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/web/internal/domain"
)

type tripResponse struct {
	Trip domain.Trip `json:"trip"`
}

type createTripResponse struct {
	TripID string `json:"tripId"`
}

// GetTrip fetches a single trip.
// Returns an error matching domain.ErrNotFound when the API answers 404.
func (c *Client) GetTrip(ctx context.Context, tripID uuid.UUID) (domain.Trip, error) {
	var resp tripResponse
	if err := c.do(ctx, http.MethodGet, "/trips/{tripId}", tripPath(tripID, ""), nil, &resp); err != nil {
		return domain.Trip{}, fmt.Errorf("apiclient.Client.GetTrip: %w", err)
	}
	return resp.Trip, nil
}

// CreateTrip creates a trip and returns its ID.
// A 2xx answer without a usable tripId returns an error matching
// domain.ErrMissingTripID: the trip exists but cannot be linked to.
func (c *Client) CreateTrip(ctx context.Context, in domain.TripInput) (uuid.UUID, error) {
	if in.EmailsToInvite == nil {
		in.EmailsToInvite = []string{}
	}
	var resp createTripResponse
	if err := created(c.do(ctx, http.MethodPost, "/trips", "/trips", in, &resp)); err != nil {
		return uuid.Nil, fmt.Errorf("apiclient.Client.CreateTrip: %w", err)
	}
	id, err := uuid.Parse(resp.TripID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("apiclient.Client.CreateTrip: %w: trip id %q", domain.ErrMissingTripID, resp.TripID)
	}
	return id, nil
}
