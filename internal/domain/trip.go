// Package domain contains the core data types for the trip planner front end.
// Values here are projections of remote API data held for the lifetime of a
// single rendered page; nothing in this package is persisted.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is the top-level entity that activities, links and participants are
// scoped to. It is fetched read-only and never mutated locally.
type Trip struct {
	ID          uuid.UUID `json:"id"`
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	IsConfirmed bool      `json:"is_confirmed"`
}

// Participant is a guest invited to a trip.
type Participant struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	IsConfirmed bool      `json:"is_confirmed"`
}
