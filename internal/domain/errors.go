package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by the API client when the remote API answers 404.
// Handlers should map this to a 404 page.
var ErrNotFound = errors.New("not found")

// ErrUnavailable is returned when the remote API could not be reached or
// answered with something that is not a usable response.
var ErrUnavailable = errors.New("api unavailable")

// ErrMissingTripID is returned when the API created a trip but answered
// without a usable trip ID.
var ErrMissingTripID = errors.New("created trip has no usable id")

// ErrMalformedPayload is returned by ParseErrorPayload when an error body
// does not have the expected shape.
var ErrMalformedPayload = errors.New("malformed error payload")

// APIError is a non-2xx answer from the remote API.
// Failure holds the classified error body.
type APIError struct {
	Status  int
	Failure Failure
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d", e.Status)
}

// Is lets callers match a 404 answer with errors.Is(err, ErrNotFound).
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == 404
}
