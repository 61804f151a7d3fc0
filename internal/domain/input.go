package domain

import "github.com/google/uuid"

// The input types below carry form values to the API verbatim.
// The front end does not validate them; the API is the only authority.

// ActivityInput is the body of POST /trips/{tripId}/activities.
type ActivityInput struct {
	TripID   uuid.UUID `json:"-" form:"-"`
	Title    string    `json:"title" form:"title"`
	OccursAt string    `json:"occurs_at" form:"occurs_at"`
}

// LinkInput is the body of POST /trips/{tripId}/links.
// The URL form field is named "urlInput" on the page.
type LinkInput struct {
	TripID uuid.UUID `json:"-" form:"-"`
	Title  string    `json:"title" form:"title"`
	URL    string    `json:"url" form:"urlInput"`
}

// InviteInput is the body of POST /trips/{tripId}/invites.
type InviteInput struct {
	TripID uuid.UUID `json:"-" form:"-"`
	Email  string    `json:"email" form:"email"`
}

// TripInput is the body of POST /trips.
type TripInput struct {
	Destination    string   `json:"destination" form:"destination"`
	StartsAt       string   `json:"starts_at" form:"starts_at"`
	EndsAt         string   `json:"ends_at" form:"ends_at"`
	OwnerName      string   `json:"owner_name" form:"owner_name"`
	OwnerEmail     string   `json:"owner_email" form:"owner_email"`
	EmailsToInvite []string `json:"emails_to_invite" form:"-"`
}
