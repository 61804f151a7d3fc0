package domain

import "time"

// Activity is a single scheduled item within a trip.
type Activity struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	OccursAt time.Time `json:"occurs_at"`
}

// ActivityDay groups the activities of one calendar day of the trip.
// The API returns one entry per trip day, including days with no activities.
type ActivityDay struct {
	Date       time.Time  `json:"date"`
	Activities []Activity `json:"activities"`
}
