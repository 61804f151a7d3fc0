package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/web/internal/domain"
)

type participantsResponse struct {
	Participants []domain.Participant `json:"participants"`
}

type createInviteResponse struct {
	ParticipantID string `json:"participantId"`
}

// ListParticipants returns the trip's guests in API order.
func (c *Client) ListParticipants(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	var resp participantsResponse
	if err := c.do(ctx, http.MethodGet, "/trips/{tripId}/participants", tripPath(tripID, "participants"), nil, &resp); err != nil {
		return nil, fmt.Errorf("apiclient.Client.ListParticipants: %w", err)
	}
	return resp.Participants, nil
}

// CreateInvite posts {email} and returns the new participant ID, or "" when
// the API answered 2xx without a readable body.
func (c *Client) CreateInvite(ctx context.Context, in domain.InviteInput) (string, error) {
	var resp createInviteResponse
	if err := created(c.do(ctx, http.MethodPost, "/trips/{tripId}/invites", tripPath(in.TripID, "invites"), in, &resp)); err != nil {
		return "", fmt.Errorf("apiclient.Client.CreateInvite: %w", err)
	}
	return resp.ParticipantID, nil
}
