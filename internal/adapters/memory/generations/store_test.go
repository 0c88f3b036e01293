package generations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/journeyexplore/trip-planner-api/internal/domain"
	"github.com/journeyexplore/trip-planner-api/internal/ports/out/generations"
)

func TestStore_PutGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore(time.Hour)

	trip := domain.GeneratedTrip{Destination: "Hanoi", Days: 2, LocalTips: []string{"Try pho"}}
	if err := s.Put(ctx, "g1", trip); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := s.Get(ctx, "g1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Destination != "Hanoi" || got.LocalTips[0] != "Try pho" {
		t.Fatalf("got=%+v", got)
	}

	got.LocalTips[0] = "mutated"
	again, _ := s.Get(ctx, "g1")
	if again.LocalTips[0] != "Try pho" {
		t.Fatalf("cache shares memory with callers")
	}
}

func TestStore_UnknownAndExpired(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore(20 * time.Millisecond)

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, generations.ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}

	_ = s.Put(ctx, "g1", domain.GeneratedTrip{Destination: "Hanoi"})
	time.Sleep(60 * time.Millisecond)
	if _, err := s.Get(ctx, "g1"); !errors.Is(err, generations.ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound after expiry", err)
	}
}
