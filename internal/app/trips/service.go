package trips

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/journeyexplore/trip-planner-api/internal/app/fallback"
	"github.com/journeyexplore/trip-planner-api/internal/domain"
	"github.com/journeyexplore/trip-planner-api/internal/ports/out/clock"
	"github.com/journeyexplore/trip-planner-api/internal/ports/out/tripstore"
)

// Service owns the saved trip list. Nothing else writes to the store.
type Service struct {
	store tripstore.Store
	clock clock.Clock

	newTripID func() domain.TripID
}

func NewService(store tripstore.Store, clk clock.Clock) *Service {
	return &Service{
		store: store,
		clock: clk,
		newTripID: func() domain.TripID {
			return domain.TripID(uuid.NewString())
		},
	}
}

// SetNewTripIDForTest overrides trip ID generation for deterministic tests.
// It should not be used in production code.
func (s *Service) SetNewTripIDForTest(fn func() domain.TripID) {
	if fn != nil {
		s.newTripID = fn
	}
}

// SaveTrip commits trip to the head of the list with status saved. The card
// image is the first hotel's image, or the default landscape.
func (s *Service) SaveTrip(ctx context.Context, trip domain.GeneratedTrip) (domain.SavedTrip, error) {
	details := map[string]any{}
	if domain.NormalizeHumanName(trip.Destination) == "" {
		details["destination"] = "required"
	}
	if trip.Days < domain.MinTripDays {
		details["days"] = fmt.Sprintf("must be at least %d", domain.MinTripDays)
	}
	if trip.TotalCost < 0 {
		details["totalCost"] = "must not be negative"
	}
	if len(details) > 0 {
		return domain.SavedTrip{}, &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid trip", Details: details}
	}

	image := fallback.DefaultTripImage()
	if len(trip.Hotels) > 0 && trip.Hotels[0].Image != "" {
		image = trip.Hotels[0].Image
	}

	saved := domain.SavedTrip{
		GeneratedTrip: trip.Clone(),
		ID:            s.newTripID(),
		CreatedAt:     s.clock.Now().UTC(),
		Status:        domain.TripStatusSaved,
		Image:         image,
	}
	if err := s.store.Prepend(ctx, saved); err != nil {
		return domain.SavedTrip{}, err
	}
	return saved, nil
}

// RemoveTrip deletes id from the list. Unknown ids are not an error.
func (s *Service) RemoveTrip(ctx context.Context, id domain.TripID) error {
	return s.store.Remove(ctx, id)
}

// UpdateStatus sets the status of trip id. Unknown ids are a no-op; an unknown
// status is a 422.
func (s *Service) UpdateStatus(ctx context.Context, id domain.TripID, status domain.TripStatus) error {
	if !status.Valid() {
		return &Error{
			Status:  422,
			Code:    "VALIDATION_ERROR",
			Message: "invalid trip status",
			Details: map[string]any{"status": "must be one of saved, planning, completed"},
		}
	}
	return s.store.UpdateStatus(ctx, id, status)
}

func (s *Service) ListTrips(ctx context.Context) ([]domain.SavedTrip, error) {
	return s.store.List(ctx)
}

func (s *Service) GetTrip(ctx context.Context, id domain.TripID) (domain.SavedTrip, error) {
	t, err := s.store.Get(ctx, id)
	if errors.Is(err, tripstore.ErrNotFound) {
		return domain.SavedTrip{}, &Error{Status: 404, Code: "TRIP_NOT_FOUND", Message: "trip not found"}
	}
	return t, err
}

// Stats aggregates the list for the dashboard. Costs are summed as stored,
// regardless of currency.
func (s *Service) Stats(ctx context.Context) (domain.TripStats, error) {
	ts, err := s.store.List(ctx)
	if err != nil {
		return domain.TripStats{}, err
	}
	return domain.TripStats{
		TripCount: len(ts),
		TotalDays: lo.SumBy(ts, func(t domain.SavedTrip) int { return t.Days }),
		TotalCost: lo.SumBy(ts, func(t domain.SavedTrip) float64 { return t.TotalCost }),
	}, nil
}

// SeedSampleTrips loads the demo trips into an empty list. It does nothing when
// trips already exist.
func (s *Service) SeedSampleTrips(ctx context.Context) error {
	existing, err := s.store.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	samples := SampleTrips()
	// Prepend oldest first so the newest sample ends up at the head.
	for i := len(samples) - 1; i >= 0; i-- {
		if err := s.store.Prepend(ctx, samples[i]); err != nil {
			return err
		}
	}
	return nil
}
