package trips_test

import (
	"context"
	"errors"
	"testing"
	"time"

	memclock "github.com/journeyexplore/trip-planner-api/internal/adapters/memory/clock"
	memtripstore "github.com/journeyexplore/trip-planner-api/internal/adapters/memory/tripstore"
	"github.com/journeyexplore/trip-planner-api/internal/app/fallback"
	"github.com/journeyexplore/trip-planner-api/internal/app/trips"
	"github.com/journeyexplore/trip-planner-api/internal/domain"
)

func newService(t *testing.T) (*trips.Service, *memtripstore.Store, *memclock.ManualClock) {
	t.Helper()
	store := memtripstore.NewStore()
	clk := memclock.NewManualClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	return trips.NewService(store, clk), store, clk
}

func goaTrip() domain.GeneratedTrip {
	return fallback.Synthesize(domain.TripRequest{
		Destination: "Goa, India",
		Days:        3,
		Budget:      domain.BudgetCheap,
		TravelType:  domain.TravelTypeSolo,
		Currency:    domain.CurrencyINR,
	})
}

func TestService_SaveTrip_PrependsWithSavedStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, store, clk := newService(t)

	ids := []domain.TripID{"a", "b"}
	svc.SetNewTripIDForTest(func() domain.TripID {
		id := ids[0]
		ids = ids[1:]
		return id
	})

	first, err := svc.SaveTrip(ctx, goaTrip())
	if err != nil {
		t.Fatalf("SaveTrip: %v", err)
	}
	if first.ID != "a" || first.Status != domain.TripStatusSaved || !first.CreatedAt.Equal(clk.Now()) {
		t.Fatalf("saved=%+v", first)
	}
	if first.Image != fallback.HotelImage() {
		t.Fatalf("image=%q, want first hotel image", first.Image)
	}

	clk.Advance(time.Minute)
	noHotels := goaTrip()
	noHotels.Destination = "Pune"
	noHotels.Hotels = nil
	second, err := svc.SaveTrip(ctx, noHotels)
	if err != nil {
		t.Fatalf("SaveTrip: %v", err)
	}
	if second.Image != fallback.DefaultTripImage() {
		t.Fatalf("image=%q, want default", second.Image)
	}

	list, _ := store.List(ctx)
	if len(list) != 2 || list[0].ID != "b" || list[1].ID != "a" {
		t.Fatalf("list order=%v", []domain.TripID{list[0].ID, list[1].ID})
	}
}

func TestService_SaveTrip_RejectsEmptyTrip(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService(t)

	_, err := svc.SaveTrip(context.Background(), domain.GeneratedTrip{Destination: " "})
	var terr *trips.Error
	if !errors.As(err, &terr) || terr.Status != 422 {
		t.Fatalf("err=%v, want 422", err)
	}
	if _, ok := terr.Details["destination"]; !ok {
		t.Fatalf("details=%v, want destination", terr.Details)
	}
}

func TestService_RemoveUnknownTripIsNoop(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _ := newService(t)

	saved, _ := svc.SaveTrip(ctx, goaTrip())
	if err := svc.RemoveTrip(ctx, "does-not-exist"); err != nil {
		t.Fatalf("RemoveTrip: %v", err)
	}
	list, _ := svc.ListTrips(ctx)
	if len(list) != 1 || list[0].ID != saved.ID {
		t.Fatalf("list changed: %+v", list)
	}
}

func TestService_UpdateStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _ := newService(t)

	saved, _ := svc.SaveTrip(ctx, goaTrip())
	if err := svc.UpdateStatus(ctx, saved.ID, domain.TripStatusCompleted); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	got, err := svc.GetTrip(ctx, saved.ID)
	if err != nil {
		t.Fatalf("GetTrip: %v", err)
	}
	if got.Status != domain.TripStatusCompleted {
		t.Fatalf("status=%s, want completed", got.Status)
	}

	err = svc.UpdateStatus(ctx, saved.ID, "archived")
	var terr *trips.Error
	if !errors.As(err, &terr) || terr.Status != 422 {
		t.Fatalf("err=%v, want 422", err)
	}
	if err := svc.UpdateStatus(ctx, "missing", domain.TripStatusPlanning); err != nil {
		t.Fatalf("UpdateStatus unknown id: %v", err)
	}
}

func TestService_GetTrip_NotFound(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService(t)

	_, err := svc.GetTrip(context.Background(), "nope")
	var terr *trips.Error
	if !errors.As(err, &terr) || terr.Status != 404 || terr.Code != "TRIP_NOT_FOUND" {
		t.Fatalf("err=%v, want 404 TRIP_NOT_FOUND", err)
	}
}

func TestService_SeedAndStats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _ := newService(t)

	if err := svc.SeedSampleTrips(ctx); err != nil {
		t.Fatalf("SeedSampleTrips: %v", err)
	}
	if err := svc.SeedSampleTrips(ctx); err != nil {
		t.Fatalf("SeedSampleTrips again: %v", err)
	}

	list, _ := svc.ListTrips(ctx)
	if len(list) != 3 || list[0].Destination != "Goa, India" || list[2].Destination != "Tamil Nadu, India" {
		t.Fatalf("unexpected seed: %+v", list)
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TripCount != 3 || stats.TotalDays != 22 || stats.TotalCost != 88000 {
		t.Fatalf("stats=%+v, want 3/22/88000", stats)
	}
}
