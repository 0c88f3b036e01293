package planner

import (
	"fmt"
	"strings"

	"github.com/journeyexplore/trip-planner-api/internal/domain"
)

// ValidateTripRequest checks req and returns it with the destination
// whitespace-normalized. Enum values are matched case-insensitively and
// returned in canonical form. All problems are reported together in a 422
// VALIDATION_ERROR.
func ValidateTripRequest(req domain.TripRequest) (domain.TripRequest, error) {
	out := domain.TripRequest{
		Destination: domain.NormalizeHumanName(req.Destination),
		Days:        req.Days,
		Budget:      domain.Budget(strings.ToLower(strings.TrimSpace(string(req.Budget)))),
		TravelType:  domain.TravelType(strings.ToLower(strings.TrimSpace(string(req.TravelType)))),
		Currency:    domain.Currency(strings.ToUpper(strings.TrimSpace(string(req.Currency)))),
	}

	details := map[string]any{}
	if out.Destination == "" {
		details["destination"] = "required"
	}
	if out.Days < domain.MinTripDays || out.Days > domain.MaxTripDays {
		details["days"] = fmt.Sprintf("must be between %d and %d", domain.MinTripDays, domain.MaxTripDays)
	}
	if !out.Budget.Valid() {
		details["budget"] = "must be one of cheap, moderate, luxury"
	}
	if !out.TravelType.Valid() {
		details["travelType"] = "must be one of solo, couple, family, friends"
	}
	if !out.Currency.Valid() {
		details["currency"] = "must be one of USD, EUR, GBP, JPY, INR"
	}
	if len(details) > 0 {
		return domain.TripRequest{}, &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid trip request", Details: details}
	}
	return out, nil
}
