package profilerepo

import (
	"context"
	"errors"

	"github.com/journeyexplore/trip-planner-api/internal/domain"
)

var ErrNotFound = errors.New("profile not found")

// Repository stores the single traveller profile.
type Repository interface {
	// Get returns ErrNotFound until a profile has been saved.
	Get(ctx context.Context) (domain.Profile, error)
	Save(ctx context.Context, p domain.Profile) error
}
