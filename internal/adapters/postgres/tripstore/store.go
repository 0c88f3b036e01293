package tripstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/journeyexplore/trip-planner-api/internal/adapters/postgres"
	"github.com/journeyexplore/trip-planner-api/internal/domain"
	"github.com/journeyexplore/trip-planner-api/internal/ports/out/tripstore"
)

// Store is a Postgres implementation of tripstore.Store. Insertion order is the
// bigserial seq column; the full trip is kept as jsonb.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

var errNilPool = errors.New("nil postgres pool")

func (s *Store) Prepend(ctx context.Context, t domain.SavedTrip) error {
	if s.pool == nil {
		return errNilPool
	}
	body, err := json.Marshal(t.GeneratedTrip)
	if err != nil {
		return fmt.Errorf("encode trip: %w", err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO saved_trips (id, created_at, status, image, destination, days, total_cost, trip)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		string(t.ID),
		t.CreatedAt.UTC(),
		string(t.Status),
		t.Image,
		t.Destination,
		t.Days,
		t.TotalCost,
		body,
	)
	if pe, ok := postgres.AsPgError(err); ok && pe.Code == postgres.CheckViolationCode {
		return fmt.Errorf("invalid trip status %q: %w", t.Status, err)
	}
	return err
}

func (s *Store) Remove(ctx context.Context, id domain.TripID) error {
	if s.pool == nil {
		return errNilPool
	}
	_, err := s.pool.Exec(ctx, `DELETE FROM saved_trips WHERE id = $1`, string(id))
	return err
}

func (s *Store) UpdateStatus(ctx context.Context, id domain.TripID, status domain.TripStatus) error {
	if s.pool == nil {
		return errNilPool
	}
	_, err := s.pool.Exec(ctx, `UPDATE saved_trips SET status = $2 WHERE id = $1`, string(id), string(status))
	return err
}

const selectColumns = `SELECT id, created_at, status, image, trip FROM saved_trips`

func (s *Store) List(ctx context.Context) ([]domain.SavedTrip, error) {
	if s.pool == nil {
		return nil, errNilPool
	}
	rows, err := s.pool.Query(ctx, selectColumns+` ORDER BY seq DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.SavedTrip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id domain.TripID) (domain.SavedTrip, error) {
	if s.pool == nil {
		return domain.SavedTrip{}, errNilPool
	}
	row := s.pool.QueryRow(ctx, selectColumns+` WHERE id = $1 ORDER BY seq DESC LIMIT 1`, string(id))
	t, err := scanTrip(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.SavedTrip{}, tripstore.ErrNotFound
	}
	return t, err
}

func scanTrip(row pgx.Row) (domain.SavedTrip, error) {
	var (
		id        string
		createdAt time.Time
		status    string
		image     string
		body      []byte
	)
	if err := row.Scan(&id, &createdAt, &status, &image, &body); err != nil {
		return domain.SavedTrip{}, err
	}
	var trip domain.GeneratedTrip
	if err := json.Unmarshal(body, &trip); err != nil {
		return domain.SavedTrip{}, fmt.Errorf("decode trip %s: %w", id, err)
	}
	return domain.SavedTrip{
		GeneratedTrip: trip,
		ID:            domain.TripID(id),
		CreatedAt:     createdAt.UTC(),
		Status:        domain.TripStatus(status),
		Image:         image,
	}, nil
}
