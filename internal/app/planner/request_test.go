package planner_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/journeyexplore/trip-planner-api/internal/app/planner"
	"github.com/journeyexplore/trip-planner-api/internal/domain"
)

func TestValidateTripRequest_Normalizes(t *testing.T) {
	got, err := planner.ValidateTripRequest(domain.TripRequest{
		Destination: "  Goa,   India ",
		Days:        30,
		Budget:      "Luxury",
		TravelType:  " couple",
		Currency:    "usd",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TripRequest{
		Destination: "Goa, India",
		Days:        30,
		Budget:      domain.BudgetLuxury,
		TravelType:  domain.TravelTypeCouple,
		Currency:    domain.CurrencyUSD,
	}, got)
}

func TestValidateTripRequest_ReportsEveryField(t *testing.T) {
	_, err := planner.ValidateTripRequest(domain.TripRequest{Destination: "   ", Days: 31, Budget: "free", TravelType: "business", Currency: "AUD"})

	var perr *planner.Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 422, perr.Status)
	assert.Equal(t, "VALIDATION_ERROR", perr.Code)
	for _, field := range []string{"destination", "days", "budget", "travelType", "currency"} {
		assert.Contains(t, perr.Details, field)
	}
}

func TestValidateTripRequest_DayBounds(t *testing.T) {
	base := domain.TripRequest{Destination: "Oslo", Budget: domain.BudgetCheap, TravelType: domain.TravelTypeSolo, Currency: domain.CurrencyEUR}
	for days, ok := range map[int]bool{0: false, 1: true, 15: true, 30: true, 31: false, -2: false} {
		req := base
		req.Days = days
		_, err := planner.ValidateTripRequest(req)
		assert.Equal(t, ok, err == nil, "days=%d", days)
	}
}
