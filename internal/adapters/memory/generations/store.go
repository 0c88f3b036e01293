package generations

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/journeyexplore/trip-planner-api/internal/domain"
	"github.com/journeyexplore/trip-planner-api/internal/ports/out/generations"
)

// Store keeps generated trips in a TTL cache. Entries expire ttl after Put.
type Store struct {
	cache *cache.Cache
}

func NewStore(ttl time.Duration) *Store {
	cleanup := ttl / 2
	if cleanup <= 0 {
		cleanup = time.Minute
	}
	return &Store{cache: cache.New(ttl, cleanup)}
}

func (s *Store) Put(ctx context.Context, id domain.GenerationID, trip domain.GeneratedTrip) error {
	_ = ctx
	s.cache.Set(string(id), trip.Clone(), cache.DefaultExpiration)
	return nil
}

func (s *Store) Get(ctx context.Context, id domain.GenerationID) (domain.GeneratedTrip, error) {
	_ = ctx
	v, ok := s.cache.Get(string(id))
	if !ok {
		return domain.GeneratedTrip{}, generations.ErrNotFound
	}
	trip, ok := v.(domain.GeneratedTrip)
	if !ok {
		return domain.GeneratedTrip{}, generations.ErrNotFound
	}
	return trip.Clone(), nil
}
