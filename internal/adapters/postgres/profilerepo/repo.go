package profilerepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/journeyexplore/trip-planner-api/internal/domain"
	"github.com/journeyexplore/trip-planner-api/internal/ports/out/profilerepo"
)

// Repo is a Postgres implementation of profilerepo.Repository backed by a
// single-row table.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Get(ctx context.Context) (domain.Profile, error) {
	if r.pool == nil {
		return domain.Profile{}, errors.New("nil postgres pool")
	}
	var (
		p        domain.Profile
		joinDate time.Time
	)
	err := r.pool.QueryRow(ctx, `
		SELECT name, email, avatar, bio, location, join_date
		FROM profile
		WHERE singleton
	`).Scan(&p.Name, &p.Email, &p.Avatar, &p.Bio, &p.Location, &joinDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Profile{}, profilerepo.ErrNotFound
	}
	if err != nil {
		return domain.Profile{}, err
	}
	p.JoinDate = time.Date(joinDate.Year(), joinDate.Month(), joinDate.Day(), 0, 0, 0, 0, time.UTC)
	return p, nil
}

func (r *Repo) Save(ctx context.Context, p domain.Profile) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO profile (singleton, name, email, avatar, bio, location, join_date, updated_at)
		VALUES (true, $1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (singleton) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			avatar = EXCLUDED.avatar,
			bio = EXCLUDED.bio,
			location = EXCLUDED.location,
			join_date = EXCLUDED.join_date,
			updated_at = EXCLUDED.updated_at
	`, p.Name, p.Email, p.Avatar, p.Bio, p.Location, p.JoinDate.UTC())
	return err
}
