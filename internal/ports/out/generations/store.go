package generations

import (
	"context"
	"errors"

	"github.com/journeyexplore/trip-planner-api/internal/domain"
)

var ErrNotFound = errors.New("generation not found")

// Store keeps generated trips for a limited time so they can be saved or
// exported after the generate call returns.
type Store interface {
	Put(ctx context.Context, id domain.GenerationID, trip domain.GeneratedTrip) error
	// Get returns ErrNotFound for unknown or expired ids.
	Get(ctx context.Context, id domain.GenerationID) (domain.GeneratedTrip, error)
}
