package trips

import (
	"time"

	"github.com/journeyexplore/trip-planner-api/internal/app/fallback"
	"github.com/journeyexplore/trip-planner-api/internal/domain"
)

func sampleDate(month time.Month, day int) time.Time {
	return time.Date(2024, month, day, 0, 0, 0, 0, time.UTC)
}

// SampleTrips returns the demo trips, newest first. They carry summary fields
// only.
func SampleTrips() []domain.SavedTrip {
	return []domain.SavedTrip{
		{
			ID: "1",
			GeneratedTrip: domain.GeneratedTrip{
				Destination: "Goa, India",
				Days:        5,
				Budget:      domain.BudgetModerate,
				TravelType:  domain.TravelTypeCouple,
				Currency:    domain.CurrencyINR,
				TotalCost:   25000,
			},
			CreatedAt: sampleDate(time.January, 15),
			Status:    domain.TripStatusSaved,
			Image:     fallback.TripImage(962464),
		},
		{
			ID: "2",
			GeneratedTrip: domain.GeneratedTrip{
				Destination: "Kerala, India",
				Days:        7,
				Budget:      domain.BudgetLuxury,
				TravelType:  domain.TravelTypeSolo,
				Currency:    domain.CurrencyINR,
				TotalCost:   45000,
			},
			CreatedAt: sampleDate(time.January, 10),
			Status:    domain.TripStatusCompleted,
			Image:     fallback.TripImage(3889855),
		},
		{
			ID: "3",
			GeneratedTrip: domain.GeneratedTrip{
				Destination: "Tamil Nadu, India",
				Days:        10,
				Budget:      domain.BudgetCheap,
				TravelType:  domain.TravelTypeFriends,
				Currency:    domain.CurrencyINR,
				TotalCost:   18000,
			},
			CreatedAt: sampleDate(time.January, 5),
			Status:    domain.TripStatusPlanning,
			Image:     fallback.TripImage(3581368),
		},
	}
}
