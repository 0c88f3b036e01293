package profile_test

import (
	"context"
	"errors"
	"testing"
	"time"

	memprofilerepo "github.com/journeyexplore/trip-planner-api/internal/adapters/memory/profilerepo"
	"github.com/journeyexplore/trip-planner-api/internal/app/profile"
	"github.com/journeyexplore/trip-planner-api/internal/domain"
)

func TestService_GetProfile_DefaultsBeforeAnyUpdate(t *testing.T) {
	t.Parallel()

	svc := profile.NewService(memprofilerepo.NewRepo())
	got, err := svc.GetProfile(context.Background())
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got != domain.DefaultProfile() {
		t.Fatalf("got=%+v, want default", got)
	}
	if name := svc.DisplayName(context.Background()); name != "Journey Explorer" {
		t.Fatalf("DisplayName=%q", name)
	}
}

func TestService_UpdateProfile_PartialMerge(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := profile.NewService(memprofilerepo.NewRepo())

	got, err := svc.UpdateProfile(ctx, profile.UpdateProfileInput{
		Name:   profile.Some("  Asha   Rao "),
		Avatar: profile.Some("https://images.example/asha.png"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if got.Name != "Asha Rao" || got.Email != "explorer@journey.com" || got.Bio != "Travel Enthusiast & Adventure Seeker" {
		t.Fatalf("got=%+v", got)
	}

	got, err = svc.UpdateProfile(ctx, profile.UpdateProfileInput{
		Bio:      profile.Null[string](),
		JoinDate: profile.Some(time.Date(2023, 6, 2, 18, 30, 0, 0, time.UTC)),
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if got.Bio != "" || got.Avatar != "https://images.example/asha.png" || got.Name != "Asha Rao" {
		t.Fatalf("got=%+v", got)
	}
	if !got.JoinDate.Equal(time.Date(2023, 6, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("joinDate=%v", got.JoinDate)
	}

	again, _ := svc.GetProfile(ctx)
	if again != got {
		t.Fatalf("stored=%+v, want %+v", again, got)
	}
}

func TestService_UpdateProfile_Validation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		in    profile.UpdateProfileInput
		field string
	}{
		{"null name", profile.UpdateProfileInput{Name: profile.Null[string]()}, "name"},
		{"blank name", profile.UpdateProfileInput{Name: profile.Some("   ")}, "name"},
		{"bad email", profile.UpdateProfileInput{Email: profile.Some("not-an-email")}, "email"},
		{"display email", profile.UpdateProfileInput{Email: profile.Some("Asha <asha@example.com>")}, "email"},
		{"null join date", profile.UpdateProfileInput{JoinDate: profile.Null[time.Time]()}, "joinDate"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := profile.NewService(memprofilerepo.NewRepo())
			_, err := svc.UpdateProfile(context.Background(), tc.in)
			var perr *profile.Error
			if !errors.As(err, &perr) || perr.Status != 422 {
				t.Fatalf("err=%v, want 422", err)
			}
			if _, ok := perr.Details[tc.field]; !ok {
				t.Fatalf("details=%v, want %s", perr.Details, tc.field)
			}
		})
	}
}
