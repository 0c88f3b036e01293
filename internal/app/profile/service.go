package profile

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/journeyexplore/trip-planner-api/internal/domain"
	"github.com/journeyexplore/trip-planner-api/internal/ports/out/profilerepo"
)

type Service struct {
	repo profilerepo.Repository
}

func NewService(repo profilerepo.Repository) *Service {
	return &Service{repo: repo}
}

// GetProfile returns the stored profile, or the default one if none was saved.
func (s *Service) GetProfile(ctx context.Context) (domain.Profile, error) {
	p, err := s.repo.Get(ctx)
	if errors.Is(err, profilerepo.ErrNotFound) {
		return domain.DefaultProfile(), nil
	}
	return p, err
}

// DisplayName is the name used for "Planned by" when the caller gives none.
func (s *Service) DisplayName(ctx context.Context) string {
	p, err := s.GetProfile(ctx)
	if err != nil || p.Name == "" {
		return domain.DefaultProfile().Name
	}
	return p.Name
}

// UpdateProfile applies in over the current profile and saves the result.
func (s *Service) UpdateProfile(ctx context.Context, in UpdateProfileInput) (domain.Profile, error) {
	p, err := s.GetProfile(ctx)
	if err != nil {
		return domain.Profile{}, err
	}

	if in.Name.IsSpecified() {
		if in.Name.IsNull() {
			return domain.Profile{}, validationError("name", "cannot be null")
		}
		name := domain.NormalizeHumanName(in.Name.Value())
		if name == "" {
			return domain.Profile{}, validationError("name", "must be non-empty")
		}
		p.Name = name
	}

	if in.Email.IsSpecified() {
		if in.Email.IsNull() {
			return domain.Profile{}, validationError("email", "cannot be null")
		}
		email := strings.TrimSpace(in.Email.Value())
		if err := validateEmail(email); err != nil {
			return domain.Profile{}, validationError("email", err.Error())
		}
		p.Email = email
	}

	applyText := func(dst *string, o Optional[string]) {
		if !o.IsSpecified() {
			return
		}
		if o.IsNull() {
			*dst = ""
			return
		}
		*dst = strings.TrimSpace(o.Value())
	}
	applyText(&p.Avatar, in.Avatar)
	applyText(&p.Bio, in.Bio)
	applyText(&p.Location, in.Location)

	if in.JoinDate.IsSpecified() {
		if in.JoinDate.IsNull() {
			return domain.Profile{}, validationError("joinDate", "cannot be null")
		}
		d := in.JoinDate.Value().UTC()
		p.JoinDate = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	}

	if err := s.repo.Save(ctx, p); err != nil {
		return domain.Profile{}, err
	}
	return p, nil
}

func validateEmail(email string) error {
	if email == "" {
		return errors.New("must be non-empty")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return err
	}
	if addr.Address != email {
		return errors.New("must be a bare email address")
	}
	return nil
}
