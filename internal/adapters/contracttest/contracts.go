package contracttest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/journeyexplore/trip-planner-api/internal/domain"
	idempotencyport "github.com/journeyexplore/trip-planner-api/internal/ports/out/idempotency"
	profilerepoport "github.com/journeyexplore/trip-planner-api/internal/ports/out/profilerepo"
	tripstoreport "github.com/journeyexplore/trip-planner-api/internal/ports/out/tripstore"
)

type CleanupFunc = func()

type TripStoreFactory func(t *testing.T) (tripstoreport.Store, CleanupFunc)
type ProfileRepoFactory func(t *testing.T) (profilerepoport.Repository, CleanupFunc)
type IdemStoreFactory func(t *testing.T) (idempotencyport.Store, CleanupFunc)

func savedTrip(destination string, days int, createdAt time.Time) domain.SavedTrip {
	return domain.SavedTrip{
		ID:        domain.TripID(uuid.NewString()),
		CreatedAt: createdAt.UTC(),
		Status:    domain.TripStatusSaved,
		Image:     "https://images.example/" + destination + ".jpeg",
		GeneratedTrip: domain.GeneratedTrip{
			Destination: destination,
			Days:        days,
			Budget:      domain.BudgetModerate,
			TravelType:  domain.TravelTypeCouple,
			Currency:    domain.CurrencyINR,
			TotalCost:   float64(7500 * days),
			Overview:    "A trip to " + destination,
			LocalTips:   []string{"Carry cash"},
			Hotels: []domain.Hotel{{
				ID:            "hotel-1",
				Name:          destination + " Inn",
				Rating:        4.5,
				PricePerNight: 3500,
				Amenities:     []string{"WiFi"},
			}},
			Itinerary: []domain.DayPlan{{
				Day:        1,
				Activities: []domain.Activity{{ID: "day-1-activity-1", Name: "Walk", Cost: 1000, Category: "culture"}},
				Meals:      []domain.Meal{{ID: "day-1-meal-lunch", Name: "Thali", Type: domain.MealLunch, Cost: 800}},
				DailyCost:  1800,
			}},
		},
	}
}

// RunTripStore exercises the tripstore.Store contract: newest-first order,
// idempotent removal and status updates that ignore unknown ids.
func RunTripStore(t *testing.T, newStore TripStoreFactory) {
	t.Helper()
	ctx := context.Background()

	store, cleanup := newStore(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	base := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	a := savedTrip("Tamil Nadu", 10, base)
	b := savedTrip("Kerala", 7, base.Add(24*time.Hour))
	c := savedTrip("Goa", 5, base.Add(48*time.Hour))
	for _, tr := range []domain.SavedTrip{a, b, c} {
		if err := store.Prepend(ctx, tr); err != nil {
			t.Fatalf("Prepend %s: %v", tr.Destination, err)
		}
	}

	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 || got[0].ID != c.ID || got[1].ID != b.ID || got[2].ID != a.ID {
		t.Fatalf("unexpected order: %v", ids(got))
	}

	// Full trip round-trips.
	one, err := store.Get(ctx, b.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if one.Destination != "Kerala" || one.Days != 7 || one.Status != domain.TripStatusSaved || !one.CreatedAt.Equal(b.CreatedAt) {
		t.Fatalf("unexpected trip: %+v", one)
	}
	if len(one.Hotels) != 1 || one.Hotels[0].Amenities[0] != "WiFi" || len(one.Itinerary) != 1 || one.Itinerary[0].Meals[0].Type != domain.MealLunch {
		t.Fatalf("nested trip data lost: %+v", one.GeneratedTrip)
	}
	if one.Image != b.Image {
		t.Fatalf("image=%q, want %q", one.Image, b.Image)
	}

	if _, err := store.Get(ctx, domain.TripID(uuid.NewString())); !errors.Is(err, tripstoreport.ErrNotFound) {
		t.Fatalf("Get unknown err=%v, want ErrNotFound", err)
	}

	if err := store.UpdateStatus(ctx, a.ID, domain.TripStatusCompleted); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if err := store.UpdateStatus(ctx, domain.TripID(uuid.NewString()), domain.TripStatusPlanning); err != nil {
		t.Fatalf("UpdateStatus unknown: %v", err)
	}
	got, _ = store.List(ctx)
	if got[2].Status != domain.TripStatusCompleted || got[0].Status != domain.TripStatusSaved || got[1].Status != domain.TripStatusSaved {
		t.Fatalf("unexpected statuses after update: %+v", statuses(got))
	}

	if err := store.Remove(ctx, b.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := store.Remove(ctx, b.ID); err != nil {
		t.Fatalf("Remove twice: %v", err)
	}
	if err := store.Remove(ctx, domain.TripID(uuid.NewString())); err != nil {
		t.Fatalf("Remove unknown: %v", err)
	}
	got, _ = store.List(ctx)
	if len(got) != 2 || got[0].ID != c.ID || got[1].ID != a.ID {
		t.Fatalf("unexpected list after remove: %v", ids(got))
	}
}

// RunProfileRepo exercises the profilerepo.Repository contract.
func RunProfileRepo(t *testing.T, newRepo ProfileRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	if _, err := repo.Get(ctx); !errors.Is(err, profilerepoport.ErrNotFound) {
		t.Fatalf("Get before save err=%v, want ErrNotFound", err)
	}

	p := domain.DefaultProfile()
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	p.Bio = "Mountains over beaches"
	p.Avatar = "https://images.example/me.png"
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("Save overwrite: %v", err)
	}
	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != p.Name || got.Bio != p.Bio || got.Avatar != p.Avatar || !got.JoinDate.Equal(p.JoinDate) {
		t.Fatalf("got=%+v, want %+v", got, p)
	}
}

// RunIdempotencyStore exercises the idempotency.Store contract: exact-match
// lookup and overwrite on Put.
func RunIdempotencyStore(t *testing.T, newStore IdemStoreFactory) {
	t.Helper()
	ctx := context.Background()

	store, cleanup := newStore(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	fp := idempotencyport.Fingerprint{
		Key:      idempotencyport.Key("k-" + uuid.NewString()),
		Session:  "session-1",
		Method:   "POST",
		Route:    "/trips",
		BodyHash: "",
	}
	if _, ok, err := store.Get(ctx, fp); err != nil || ok {
		t.Fatalf("Get before Put ok=%v err=%v, want miss", ok, err)
	}

	rec := idempotencyport.Record{
		StatusCode:  0,
		ContentType: "text/plain",
		Body:        []byte("hash-abc"),
		CreatedAt:   time.Unix(123, 0).UTC(),
	}
	if err := store.Put(ctx, fp, rec); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := store.Get(ctx, fp)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatalf("expected ok=true")
	}
	if string(got.Body) != "hash-abc" || got.ContentType != "text/plain" || got.StatusCode != 0 {
		t.Fatalf("unexpected record: %+v", got)
	}

	// A different body hash is a different fingerprint.
	withBody := fp
	withBody.BodyHash = "hash-abc"
	if _, ok, err := store.Get(ctx, withBody); err != nil || ok {
		t.Fatalf("Get other hash ok=%v err=%v, want miss", ok, err)
	}

	// Overwrite semantics.
	rec2 := rec
	rec2.StatusCode = 201
	rec2.ContentType = "application/json"
	rec2.Body = []byte(`{"id":"x"}`)
	if err := store.Put(ctx, fp, rec2); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	got, ok, err = store.Get(ctx, fp)
	if err != nil || !ok || string(got.Body) != `{"id":"x"}` || got.StatusCode != 201 {
		t.Fatalf("expected overwritten record, got ok=%v err=%v rec=%+v", ok, err, got)
	}

	// PutIfAbsent keeps the existing record.
	held, created, err := store.PutIfAbsent(ctx, fp, rec)
	if err != nil || created || held.StatusCode != 201 || string(held.Body) != `{"id":"x"}` {
		t.Fatalf("PutIfAbsent on held key created=%v err=%v rec=%+v", created, err, held)
	}

	if err := store.Delete(ctx, fp); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, err := store.Get(ctx, fp); err != nil || ok {
		t.Fatalf("Get after Delete ok=%v err=%v, want miss", ok, err)
	}
	if err := store.Delete(ctx, fp); err != nil {
		t.Fatalf("Delete missing: %v", err)
	}
}

// RunIdempotencyClaims checks that concurrent PutIfAbsent calls on one
// fingerprint let exactly one caller win.
func RunIdempotencyClaims(t *testing.T, newStore IdemStoreFactory) {
	t.Helper()
	ctx := context.Background()

	store, cleanup := newStore(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	fp := idempotencyport.Fingerprint{
		Key:      idempotencyport.Key("claim-" + uuid.NewString()),
		Session:  "session-1",
		Method:   "POST",
		Route:    "/trips",
		BodyHash: "hash-abc",
	}

	const callers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners []int
		errs    []error
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec := idempotencyport.Record{ContentType: "text/plain", Body: []byte{byte('0' + i)}}
			_, created, err := store.PutIfAbsent(ctx, fp, rec)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
			}
			if created {
				winners = append(winners, i)
			}
		}(i)
	}
	wg.Wait()

	if len(errs) > 0 {
		t.Fatalf("PutIfAbsent errors: %v", errs)
	}
	if len(winners) != 1 {
		t.Fatalf("winners=%v, want exactly one", winners)
	}
	got, ok, err := store.Get(ctx, fp)
	if err != nil || !ok || string(got.Body) != string(rune('0'+winners[0])) {
		t.Fatalf("stored record ok=%v err=%v body=%q, want winner %d", ok, err, got.Body, winners[0])
	}
}

func ids(ts []domain.SavedTrip) []domain.TripID {
	out := make([]domain.TripID, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.ID)
	}
	return out
}

func statuses(ts []domain.SavedTrip) []domain.TripStatus {
	out := make([]domain.TripStatus, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.Status)
	}
	return out
}
