package idempotency

import (
	"context"
	"slices"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/journeyexplore/trip-planner-api/internal/ports/out/idempotency"
)

// DefaultTTL is how long a replayable response is kept.
const DefaultTTL = 24 * time.Hour

// Store is an in-memory implementation of idempotency.Store whose records
// expire after a fixed TTL. It is safe for concurrent use.
type Store struct {
	cache *cache.Cache
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{cache: cache.New(ttl, ttl/4)}
}

func (s *Store) Get(ctx context.Context, fp idempotency.Fingerprint) (idempotency.Record, bool, error) {
	_ = ctx
	v, ok := s.cache.Get(cacheKey(fp))
	if !ok {
		return idempotency.Record{}, false, nil
	}
	rec := v.(idempotency.Record)
	rec.Body = slices.Clone(rec.Body)
	return rec, true, nil
}

func (s *Store) Put(ctx context.Context, fp idempotency.Fingerprint, rec idempotency.Record) error {
	_ = ctx
	rec.Body = slices.Clone(rec.Body)
	s.cache.Set(cacheKey(fp), rec, cache.DefaultExpiration)
	return nil
}

func (s *Store) PutIfAbsent(ctx context.Context, fp idempotency.Fingerprint, rec idempotency.Record) (idempotency.Record, bool, error) {
	_ = ctx
	rec.Body = slices.Clone(rec.Body)
	k := cacheKey(fp)
	for {
		if err := s.cache.Add(k, rec, cache.DefaultExpiration); err == nil {
			return rec, true, nil
		}
		// The holder may expire between Add and Get; try again.
		if v, ok := s.cache.Get(k); ok {
			existing := v.(idempotency.Record)
			existing.Body = slices.Clone(existing.Body)
			return existing, false, nil
		}
	}
}

func (s *Store) Delete(ctx context.Context, fp idempotency.Fingerprint) error {
	_ = ctx
	s.cache.Delete(cacheKey(fp))
	return nil
}

// cacheKey joins the fingerprint with a separator that cannot appear in a
// header value or route template.
func cacheKey(fp idempotency.Fingerprint) string {
	return string(fp.Key) + "\x00" + fp.Session + "\x00" + fp.Method + "\x00" + fp.Route + "\x00" + fp.BodyHash
}
