package profilerepo

import (
	"context"
	"sync"

	"github.com/journeyexplore/trip-planner-api/internal/domain"
	"github.com/journeyexplore/trip-planner-api/internal/ports/out/profilerepo"
)

// Repo is an in-memory implementation of profilerepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu      sync.RWMutex
	profile *domain.Profile
}

func NewRepo() *Repo {
	return &Repo{}
}

func (r *Repo) Get(ctx context.Context) (domain.Profile, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.profile == nil {
		return domain.Profile{}, profilerepo.ErrNotFound
	}
	return *r.profile, nil
}

func (r *Repo) Save(ctx context.Context, p domain.Profile) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profile = &p
	return nil
}
