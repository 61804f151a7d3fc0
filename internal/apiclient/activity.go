package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/web/internal/domain"
)

type activitiesResponse struct {
	Activities []domain.ActivityDay `json:"activities"`
}

type createActivityResponse struct {
	ActivityID string `json:"activityId"`
}

// ListActivities returns the trip's activities grouped per day, in API order.
func (c *Client) ListActivities(ctx context.Context, tripID uuid.UUID) ([]domain.ActivityDay, error) {
	var resp activitiesResponse
	if err := c.do(ctx, http.MethodGet, "/trips/{tripId}/activities", tripPath(tripID, "activities"), nil, &resp); err != nil {
		return nil, fmt.Errorf("apiclient.Client.ListActivities: %w", err)
	}
	return resp.Activities, nil
}

// CreateActivity posts {title, occurs_at} and returns the new activity ID,
// or "" when the API answered 2xx without a readable body.
func (c *Client) CreateActivity(ctx context.Context, in domain.ActivityInput) (string, error) {
	var resp createActivityResponse
	if err := created(c.do(ctx, http.MethodPost, "/trips/{tripId}/activities", tripPath(in.TripID, "activities"), in, &resp)); err != nil {
		return "", fmt.Errorf("apiclient.Client.CreateActivity: %w", err)
	}
	return resp.ActivityID, nil
}
