package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/web/internal/domain"
)

type linksResponse struct {
	Links []domain.Link `json:"links"`
}

type createLinkResponse struct {
	LinkID string `json:"linkId"`
}

// ListLinks returns the trip's links verbatim, in API order.
func (c *Client) ListLinks(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error) {
	var resp linksResponse
	if err := c.do(ctx, http.MethodGet, "/trips/{tripId}/links", tripPath(tripID, "links"), nil, &resp); err != nil {
		return nil, fmt.Errorf("apiclient.Client.ListLinks: %w", err)
	}
	return resp.Links, nil
}

// CreateLink posts {title, url} and returns the new link ID, or "" when the
// API answered 2xx without a readable body.
func (c *Client) CreateLink(ctx context.Context, in domain.LinkInput) (string, error) {
	var resp createLinkResponse
	if err := created(c.do(ctx, http.MethodPost, "/trips/{tripId}/links", tripPath(in.TripID, "links"), in, &resp)); err != nil {
		return "", fmt.Errorf("apiclient.Client.CreateLink: %w", err)
	}
	return resp.LinkID, nil
}
