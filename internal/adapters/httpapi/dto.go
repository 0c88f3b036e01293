package httpapi

import (
	"time"

	"github.com/oapi-codegen/nullable"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/journeyexplore/trip-planner-api/internal/app/profile"
	"github.com/journeyexplore/trip-planner-api/internal/domain"
)

type GenerateTripResponse struct {
	GenerationId string               `json:"generationId"`
	Trip         domain.GeneratedTrip `json:"trip"`
}

// SaveTripRequest names a trip by generation id or carries it inline.
// Exactly one of the two must be set.
type SaveTripRequest struct {
	GenerationId string                `json:"generationId,omitempty"`
	Trip         *domain.GeneratedTrip `json:"trip,omitempty"`
}

type ListTripsResponse struct {
	Trips []domain.SavedTrip `json:"trips"`
}

type UpdateTripStatusRequest struct {
	Status domain.TripStatus `json:"status"`
}

type Profile struct {
	Name     string             `json:"name"`
	Email    string             `json:"email"`
	Avatar   string             `json:"avatar"`
	Bio      string             `json:"bio"`
	Location string             `json:"location"`
	JoinDate openapi_types.Date `json:"joinDate"`
}

type ProfileResponse struct {
	Profile Profile `json:"profile"`
}

// UpdateProfileRequest is a partial update: omitted fields are left alone,
// explicit nulls clear the field where allowed.
type UpdateProfileRequest struct {
	Name     nullable.Nullable[string]              `json:"name,omitempty"`
	Email    nullable.Nullable[openapi_types.Email] `json:"email,omitempty"`
	Avatar   nullable.Nullable[string]              `json:"avatar,omitempty"`
	Bio      nullable.Nullable[string]              `json:"bio,omitempty"`
	Location nullable.Nullable[string]              `json:"location,omitempty"`
	JoinDate nullable.Nullable[openapi_types.Date]  `json:"joinDate,omitempty"`
}

func profileFromDomain(p domain.Profile) Profile {
	return Profile{
		Name:     p.Name,
		Email:    p.Email,
		Avatar:   p.Avatar,
		Bio:      p.Bio,
		Location: p.Location,
		JoinDate: openapi_types.Date{Time: p.JoinDate},
	}
}

func updateProfileInputFromRequest(req UpdateProfileRequest) profile.UpdateProfileInput {
	return profile.UpdateProfileInput{
		Name:     optionalFrom(req.Name, func(v string) string { return v }),
		Email:    optionalFrom(req.Email, func(v openapi_types.Email) string { return string(v) }),
		Avatar:   optionalFrom(req.Avatar, func(v string) string { return v }),
		Bio:      optionalFrom(req.Bio, func(v string) string { return v }),
		Location: optionalFrom(req.Location, func(v string) string { return v }),
		JoinDate: optionalFrom(req.JoinDate, func(v openapi_types.Date) time.Time { return v.Time }),
	}
}

func optionalFrom[T, U any](n nullable.Nullable[T], conv func(T) U) profile.Optional[U] {
	switch {
	case !n.IsSpecified():
		return profile.Unspecified[U]()
	case n.IsNull():
		return profile.Null[U]()
	default:
		v, err := n.Get()
		if err != nil {
			return profile.Null[U]()
		}
		return profile.Some(conv(v))
	}
}
