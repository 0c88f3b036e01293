package export

import (
	"github.com/samber/lo"

	"github.com/journeyexplore/trip-planner-api/internal/domain"
)

// Breakdown is the cost summary printed at the end of a document.
type Breakdown struct {
	Accommodation float64 `json:"accommodation"`
	Activities    float64 `json:"activities"`
	Meals         float64 `json:"meals"`
	Total         float64 `json:"total"`
}

// CostBreakdown sums hotel nights for every listed hotel over the trip length,
// every activity and every meal. Total is the trip's own TotalCost.
func CostBreakdown(trip domain.GeneratedTrip) Breakdown {
	return Breakdown{
		Accommodation: lo.SumBy(trip.Hotels, func(h domain.Hotel) float64 {
			return h.PricePerNight * float64(trip.Days)
		}),
		Activities: lo.SumBy(trip.Itinerary, func(d domain.DayPlan) float64 {
			return lo.SumBy(d.Activities, func(a domain.Activity) float64 { return a.Cost })
		}),
		Meals: lo.SumBy(trip.Itinerary, func(d domain.DayPlan) float64 {
			return lo.SumBy(d.Meals, func(m domain.Meal) float64 { return m.Cost })
		}),
		Total: trip.TotalCost,
	}
}

// LineItems is Accommodation + Activities + Meals.
func (b Breakdown) LineItems() float64 {
	return b.Accommodation + b.Activities + b.Meals
}

// FileName is the download name for a trip document.
func FileName(destination string) string {
	return domain.SlugifyDestination(destination) + "_trip_plan.pdf"
}
