// Package fallback builds complete trips without a model.
//
// Synthesize is deterministic: the same request always yields the same trip,
// ids included. Its line items are priced so that hotel nights, activities and
// meals add up to TotalCost exactly.
package fallback

import (
	"fmt"
	"math"

	"github.com/journeyexplore/trip-planner-api/internal/app/costs"
	"github.com/journeyexplore/trip-planner-api/internal/domain"
)

// Synthesize returns a full trip for req priced from the cost tables.
func Synthesize(req domain.TripRequest) domain.GeneratedTrip {
	days := max(req.Days, 0)
	total := costs.EstimatedTotal(req.Budget, days, req.Currency)

	itinerary := make([]domain.DayPlan, 0, days)
	for d := 1; d <= days; d++ {
		itinerary = append(itinerary, Day(req, d))
	}

	return domain.GeneratedTrip{
		Destination: req.Destination,
		Days:        req.Days,
		Budget:      req.Budget,
		TravelType:  req.TravelType,
		Currency:    req.Currency,
		TotalCost:   total,
		Overview: fmt.Sprintf("Explore the beautiful %s with this %d-day adventure tailored for %s travelers on a %s budget.",
			req.Destination, req.Days, req.TravelType, req.Budget),
		BestTimeToVisit: "Best visited during pleasant weather months for optimal experience.",
		LocalTips: []string{
			"Try authentic local cuisine for the best cultural experience",
			"Learn a few basic local phrases to connect with locals",
			"Respect local customs and dress codes at religious sites",
			"Keep important documents and emergency contacts handy",
		},
		Hotels:    []domain.Hotel{Hotel(req)},
		Itinerary: itinerary,
	}
}

// Hotel is the single hotel of a synthesized trip.
func Hotel(req domain.TripRequest) domain.Hotel {
	return domain.Hotel{
		ID:            "hotel-1",
		Name:          req.Destination + " Heritage Hotel",
		Rating:        4.2,
		PricePerNight: costs.BaselineHotelPrice(req.Budget, req.Currency),
		Location:      "City Center",
		Amenities:     []string{"WiFi", "Restaurant", "Pool", "Room Service", "Parking"},
		Description:   "Comfortable accommodation with modern amenities and traditional charm",
		Image:         HotelImage(),
	}
}

// Day builds synthesized day d of req. Days inside 1..req.Days receive their
// share of the trip total; any other day is priced at the base share.
func Day(req domain.TripRequest, d int) domain.DayPlan {
	share := dayShare(req, d)

	cultural := domain.Activity{
		ID:          ActivityID(d, 1),
		Name:        fmt.Sprintf("Day %d Cultural Experience", d),
		Description: fmt.Sprintf("Immerse yourself in the rich culture and heritage of %s", req.Destination),
		Duration:    "3-4 hours",
		Cost:        costs.BaselineActivityCost(req.Budget, req.Currency),
		Location:    req.Destination + " Cultural District",
		Category:    "culture",
		Image:       CategoryImage("culture"),
		Tips:        "Best experienced in the morning when sites are less crowded",
	}

	meals := []domain.Meal{
		{
			ID:          MealID(d, string(domain.MealBreakfast)),
			Name:        "Local Breakfast Spot",
			Type:        domain.MealBreakfast,
			Cost:        costs.BaselineMealCost(req.Budget, domain.MealBreakfast, req.Currency),
			Location:    "Near accommodation",
			Cuisine:     "Local specialties",
			Description: "Start your day with authentic local breakfast",
		},
		{
			ID:          MealID(d, string(domain.MealLunch)),
			Name:        "Traditional Restaurant",
			Type:        domain.MealLunch,
			Cost:        costs.BaselineMealCost(req.Budget, domain.MealLunch, req.Currency),
			Location:    "City center",
			Cuisine:     "Regional cuisine",
			Description: "Enjoy traditional flavors and local ingredients",
		},
		{
			ID:          MealID(d, string(domain.MealDinner)),
			Name:        "Evening Dining Experience",
			Type:        domain.MealDinner,
			Cost:        costs.BaselineMealCost(req.Budget, domain.MealDinner, req.Currency),
			Location:    "Popular dining district",
			Cuisine:     "Multi-cuisine",
			Description: "End your day with a memorable dining experience",
		},
	}

	// The local adventure takes whatever is left of the day's share.
	spent := cultural.Cost
	for _, m := range meals {
		spent += m.Cost
	}
	adventure := domain.Activity{
		ID:          ActivityID(d, 2),
		Name:        fmt.Sprintf("Day %d Local Adventure", d),
		Description: fmt.Sprintf("Discover hidden gems and local favorites in %s", req.Destination),
		Duration:    "2-3 hours",
		Cost:        math.Max(share-spent, 0),
		Location:    req.Destination + " Local Area",
		Category:    "adventure",
		Image:       CategoryImage("adventure"),
		Tips:        "Perfect for afternoon exploration and photography",
	}

	day := domain.DayPlan{
		Day:        d,
		Activities: []domain.Activity{cultural, adventure},
		Meals:      meals,
	}
	day.Recompute()
	return day
}

// dayShare splits what remains of the trip total after hotel nights evenly
// across the requested days. Whole-unit leftovers go to the earliest days.
func dayShare(req domain.TripRequest, d int) float64 {
	days := int64(max(req.Days, 1))
	total := int64(costs.EstimatedTotal(req.Budget, int(days), req.Currency))
	nights := int64(costs.BaselineHotelPrice(req.Budget, req.Currency)) * days
	rest := max(total-nights, 0)

	share := rest / days
	if d >= 1 && int64(d) <= days && int64(d) <= rest%days {
		share++
	}
	return float64(share)
}
