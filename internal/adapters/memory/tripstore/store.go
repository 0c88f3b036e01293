package tripstore

import (
	"context"
	"slices"
	"sync"

	"github.com/journeyexplore/trip-planner-api/internal/domain"
	"github.com/journeyexplore/trip-planner-api/internal/ports/out/tripstore"
)

// Store is an in-memory implementation of tripstore.Store.
// It is safe for concurrent use; writers are serialized by a single mutex.
type Store struct {
	mu    sync.RWMutex
	trips []domain.SavedTrip // newest first
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Prepend(ctx context.Context, t domain.SavedTrip) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trips = slices.Insert(s.trips, 0, cloneTrip(t))
	return nil
}

func (s *Store) Remove(ctx context.Context, id domain.TripID) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trips = slices.DeleteFunc(s.trips, func(t domain.SavedTrip) bool { return t.ID == id })
	return nil
}

func (s *Store) UpdateStatus(ctx context.Context, id domain.TripID, status domain.TripStatus) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.trips {
		if s.trips[i].ID == id {
			s.trips[i].Status = status
		}
	}
	return nil
}

func (s *Store) List(ctx context.Context) ([]domain.SavedTrip, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.SavedTrip, 0, len(s.trips))
	for _, t := range s.trips {
		out = append(out, cloneTrip(t))
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, id domain.TripID) (domain.SavedTrip, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.trips {
		if t.ID == id {
			return cloneTrip(t), nil
		}
	}
	return domain.SavedTrip{}, tripstore.ErrNotFound
}

func cloneTrip(in domain.SavedTrip) domain.SavedTrip {
	out := in
	out.GeneratedTrip = in.GeneratedTrip.Clone()
	return out
}
