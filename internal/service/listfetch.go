package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Fetcher issues the single read request of a list fetch.
type Fetcher[T any] func(ctx context.Context, tripID uuid.UUID) ([]T, error)

// ListFetcher holds one list fetched from the API for one trip.
// A successful fetch replaces the held list verbatim: no merge, no dedup,
// no reordering. A failed or discarded fetch leaves the held list as it was.
//
// A ListFetcher lives for one page render, so every page load fetches each
// list exactly once. There is no refresh: after a successful form post the
// browser is redirected and the next render starts from fresh fetchers.
// Sync skips the fetch only for a repeated call with the same trip.
type ListFetcher[T any] struct {
	fetch  Fetcher[T]
	tripID uuid.UUID
	loaded bool
	items  []T
}

// NewListFetcher constructs an empty ListFetcher.
func NewListFetcher[T any](fetch Fetcher[T]) *ListFetcher[T] {
	return &ListFetcher[T]{fetch: fetch}
}

// Sync fetches the list for tripID unless it is already loaded for that trip.
func (f *ListFetcher[T]) Sync(ctx context.Context, tripID uuid.UUID) error {
	if f.loaded && f.tripID == tripID {
		return nil
	}
	return f.load(ctx, tripID)
}

// Items returns the held list. It is never nil.
func (f *ListFetcher[T]) Items() []T {
	if f.items == nil {
		return []T{}
	}
	return f.items
}

func (f *ListFetcher[T]) load(ctx context.Context, tripID uuid.UUID) error {
	items, err := f.fetch(ctx, tripID)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if err != nil {
		return fmt.Errorf("service.ListFetcher.Sync: %w", err)
	}
	f.items = items
	f.tripID = tripID
	f.loaded = true
	return nil
}
