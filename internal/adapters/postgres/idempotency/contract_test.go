package idempotency

import (
	"testing"

	"github.com/journeyexplore/trip-planner-api/internal/adapters/contracttest"
	"github.com/journeyexplore/trip-planner-api/internal/adapters/postgres/testutil"
	idempotencyport "github.com/journeyexplore/trip-planner-api/internal/ports/out/idempotency"
)

func TestContract_PostgresIdempotencyStore(t *testing.T) {
	pool := testutil.OpenMigratedPool(t)

	contracttest.RunIdempotencyStore(t, func(t *testing.T) (idempotencyport.Store, func()) {
		t.Helper()
		return NewStore(pool), nil
	})
	contracttest.RunIdempotencyClaims(t, func(t *testing.T) (idempotencyport.Store, func()) {
		t.Helper()
		return NewStore(pool), nil
	})
}
