package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/web/internal/domain"
	"github.com/pkordes/trip-planner/web/internal/messages"
)

// Writer issues the single write request of a form submission and returns
// the ID of the created resource.
type Writer[T any] func(ctx context.Context, in T) (string, error)

// Translator resolves message IDs to display strings.
// *messages.Catalog satisfies it.
type Translator interface {
	Text(id messages.ID) string
}

// Outcome is what the caller must do after a submission.
type Outcome int

const (
	// OutcomeRefresh: the write succeeded; re-synchronise the view from the API.
	OutcomeRefresh Outcome = iota + 1
	// OutcomeFailed: the write failed; the modal now holds the error to show.
	OutcomeFailed
	// OutcomeDiscarded: the caller went away while the request was in flight.
	// Nothing was changed and nothing should be rendered.
	OutcomeDiscarded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRefresh:
		return "refresh"
	case OutcomeFailed:
		return "failed"
	case OutcomeDiscarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// Result is the outcome of one Submit call.
// ID is set only for OutcomeRefresh.
type Result struct {
	Outcome Outcome
	ID      string
}

// Submission is the form-submission controller shared by every modal.
// One value serves all requests; per-submission state lives in the
// *domain.Modal passed to Submit.
type Submission[T any] struct {
	write  Writer[T]
	mapper ErrorMapper
	text   Translator
}

// NewSubmission constructs a Submission that writes with write and maps
// failures with mapper.
func NewSubmission[T any](write Writer[T], mapper ErrorMapper, text Translator) *Submission[T] {
	return &Submission[T]{write: write, mapper: mapper, text: text}
}

// Submit runs one submission against modal:
// the modal's previous error is cleared, exactly one write is issued, and
// on failure the mapped message is stored in modal.Error. Failures are
// never returned or retried.
func (s *Submission[T]) Submit(ctx context.Context, modal *domain.Modal, in T) Result {
	modal.Error = nil

	id, err := s.write(ctx, in)
	if ctx.Err() != nil {
		return Result{Outcome: OutcomeDiscarded}
	}
	if err != nil {
		id := s.mapper.Map(domain.FailureOf(err))
		modal.Error = &domain.SubmissionError{Message: s.text.Text(id)}
		return Result{Outcome: OutcomeFailed}
	}
	return Result{Outcome: OutcomeRefresh, ID: id}
}

// TripCreator creates trips on the remote API. *apiclient.Client satisfies it.
type TripCreator interface {
	CreateTrip(ctx context.Context, in domain.TripInput) (uuid.UUID, error)
}

// CreateTripWriter adapts api to the Writer of a trip Submission.
// The new trip's ID becomes the Result ID. A trip created without a usable
// ID is still a success, with an empty Result ID.
func CreateTripWriter(api TripCreator) Writer[domain.TripInput] {
	return func(ctx context.Context, in domain.TripInput) (string, error) {
		id, err := api.CreateTrip(ctx, in)
		if errors.Is(err, domain.ErrMissingTripID) {
			return "", nil
		}
		if err != nil {
			return "", err
		}
		return id.String(), nil
	}
}
