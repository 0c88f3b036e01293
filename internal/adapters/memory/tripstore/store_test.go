package tripstore

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/journeyexplore/trip-planner-api/internal/domain"
)

func TestStore_ReturnedTripsAreCopies(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()

	trip := domain.SavedTrip{
		ID:     "t1",
		Status: domain.TripStatusSaved,
		GeneratedTrip: domain.GeneratedTrip{
			Destination: "Lisbon",
			LocalTips:   []string{"Ride tram 28"},
			Hotels:      []domain.Hotel{{ID: "hotel-1", Amenities: []string{"WiFi"}}},
		},
	}
	if err := s.Prepend(ctx, trip); err != nil {
		t.Fatalf("Prepend: %v", err)
	}
	trip.LocalTips[0] = "mutated"

	got, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	got[0].Hotels[0].Amenities[0] = "mutated"

	again, _ := s.Get(ctx, "t1")
	if again.LocalTips[0] != "Ride tram 28" || again.Hotels[0].Amenities[0] != "WiFi" {
		t.Fatalf("store shares memory with callers: %+v", again)
	}
}

func TestStore_ConcurrentPrependKeepsEveryTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Prepend(ctx, domain.SavedTrip{ID: domain.TripID(fmt.Sprint(i))})
		}(i)
	}
	wg.Wait()

	got, _ := s.List(ctx)
	if len(got) != 50 {
		t.Fatalf("len=%d, want 50", len(got))
	}
}
