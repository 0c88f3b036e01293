package idempotency

import (
	"testing"

	"github.com/journeyexplore/trip-planner-api/internal/adapters/contracttest"
	idempotencyport "github.com/journeyexplore/trip-planner-api/internal/ports/out/idempotency"
)

func TestContract_IdempotencyStore(t *testing.T) {
	contracttest.RunIdempotencyStore(t, func(t *testing.T) (idempotencyport.Store, func()) {
		t.Helper()
		return NewStore(DefaultTTL), nil
	})
}

func TestContract_IdempotencyClaims(t *testing.T) {
	contracttest.RunIdempotencyClaims(t, func(t *testing.T) (idempotencyport.Store, func()) {
		t.Helper()
		return NewStore(DefaultTTL), nil
	})
}
