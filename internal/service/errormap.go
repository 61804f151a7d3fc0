// Package service contains the front end's form and page logic.
// Services turn form input into API calls, classify API failures into
// display messages and assemble page data. No HTTP or HTML lives here;
// services depend on small API interfaces, not on the client.
package service

import (
	"github.com/pkordes/trip-planner/web/internal/domain"
	"github.com/pkordes/trip-planner/web/internal/messages"
)

// FieldRule binds one message to a group of payload fields.
// The rule matches when any of Fields is flagged.
type FieldRule struct {
	Fields  []string
	Message messages.ID
}

// ErrorMapper translates a classified API failure into one message ID.
// Field rules are checked in order, then sentinel messages, then the
// fallback. Only the first match is returned, so a payload flagging several
// fields surfaces a single message.
type ErrorMapper struct {
	Fields    []FieldRule
	Sentinels map[string]messages.ID
	Fallback  messages.ID
}

// Map returns the message ID for f. Map is pure.
func (m ErrorMapper) Map(f domain.Failure) messages.ID {
	switch f := f.(type) {
	case domain.FieldFailure:
		for _, rule := range m.Fields {
			for _, field := range rule.Fields {
				if f.Has(field) {
					return rule.Message
				}
			}
		}
		if id, ok := m.Sentinels[f.Message]; ok {
			return id
		}
	case domain.RuleFailure:
		if id, ok := m.Sentinels[f.Message]; ok {
			return id
		}
	}
	return m.fallback()
}

func (m ErrorMapper) fallback() messages.ID {
	if m.Fallback == "" {
		return messages.Generic
	}
	return m.Fallback
}

// ActivityErrors maps failures of POST /trips/{tripId}/activities.
var ActivityErrors = ErrorMapper{
	Fields: []FieldRule{
		{Fields: []string{"title"}, Message: messages.ActivityTitleTooShort},
		{Fields: []string{"occurs_at"}, Message: messages.ActivityInvalidDate},
	},
	Sentinels: map[string]messages.ID{
		"Invalid activity date.": messages.ActivityOutsideTrip,
	},
	Fallback: messages.Generic,
}

// LinkErrors maps failures of POST /trips/{tripId}/links.
var LinkErrors = ErrorMapper{
	Fields: []FieldRule{
		{Fields: []string{"title"}, Message: messages.LinkTitleTooShort},
		{Fields: []string{"url"}, Message: messages.LinkInvalidURL},
	},
	Fallback: messages.Generic,
}

// InviteErrors maps failures of POST /trips/{tripId}/invites.
var InviteErrors = ErrorMapper{
	Fields: []FieldRule{
		{Fields: []string{"email"}, Message: messages.InviteInvalidEmail},
	},
	Fallback: messages.Generic,
}

// TripErrors maps failures of POST /trips.
var TripErrors = ErrorMapper{
	Fields: []FieldRule{
		{Fields: []string{"destination"}, Message: messages.TripDestinationTooShort},
		{Fields: []string{"starts_at", "ends_at"}, Message: messages.TripInvalidDates},
		{Fields: []string{"owner_name"}, Message: messages.TripOwnerNameTooShort},
		{Fields: []string{"owner_email", "emails_to_invite"}, Message: messages.TripInvalidEmail},
	},
	Sentinels: map[string]messages.ID{
		"Invalid trip start date.": messages.TripInvalidDates,
		"Invalid trip end date.":   messages.TripInvalidDates,
	},
	Fallback: messages.Generic,
}
