package tripstore

import (
	"context"
	"errors"

	"github.com/journeyexplore/trip-planner-api/internal/domain"
)

var ErrNotFound = errors.New("saved trip not found")

// Store holds the saved trip list, newest first.
//
// Remove and UpdateStatus on an unknown id are no-ops. Writes must be
// serialized so insertion order is preserved under concurrent callers.
type Store interface {
	// Prepend inserts t at the head of the list.
	Prepend(ctx context.Context, t domain.SavedTrip) error
	Remove(ctx context.Context, id domain.TripID) error
	UpdateStatus(ctx context.Context, id domain.TripID, status domain.TripStatus) error
	// List returns every saved trip, newest first.
	List(ctx context.Context) ([]domain.SavedTrip, error)
	// Get returns ErrNotFound for an unknown id.
	Get(ctx context.Context, id domain.TripID) (domain.SavedTrip, error)
}
