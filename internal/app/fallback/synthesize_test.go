package fallback_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/journeyexplore/trip-planner-api/internal/app/fallback"
	"github.com/journeyexplore/trip-planner-api/internal/domain"
)

func goaRequest() domain.TripRequest {
	return domain.TripRequest{
		Destination: "Goa, India",
		Days:        3,
		Budget:      domain.BudgetCheap,
		TravelType:  domain.TravelTypeSolo,
		Currency:    domain.CurrencyINR,
	}
}

func TestSynthesize_GoaScenario(t *testing.T) {
	trip := fallback.Synthesize(goaRequest())

	assert.Equal(t, 10500.0, trip.TotalCost)
	require.Len(t, trip.Hotels, 1)
	assert.Equal(t, 1500.0, trip.Hotels[0].PricePerNight)
	assert.Equal(t, "Goa, India Heritage Hotel", trip.Hotels[0].Name)
	assert.Equal(t, "hotel-1", trip.Hotels[0].ID)
	require.Len(t, trip.Itinerary, 3)
	assert.Len(t, trip.LocalTips, 4)

	for i, day := range trip.Itinerary {
		assert.Equal(t, i+1, day.Day)
		require.Len(t, day.Activities, 2)
		require.Len(t, day.Meals, 3)
		assert.Equal(t, "culture", day.Activities[0].Category)
		assert.Equal(t, "adventure", day.Activities[1].Category)
		assert.Equal(t, 500.0, day.Activities[0].Cost)
		assert.Equal(t, 300.0, day.Activities[1].Cost)
		assert.Equal(t, 2000.0, day.DailyCost)
		assert.Equal(t, []domain.MealType{domain.MealBreakfast, domain.MealLunch, domain.MealDinner},
			[]domain.MealType{day.Meals[0].Type, day.Meals[1].Type, day.Meals[2].Type})
	}
	assert.Equal(t, "day-2-activity-1", trip.Itinerary[1].Activities[0].ID)
	assert.Equal(t, "day-3-meal-dinner", trip.Itinerary[2].Meals[2].ID)
}

func TestSynthesize_Deterministic(t *testing.T) {
	req := goaRequest()
	req.Days = 12
	req.Currency = domain.CurrencyEUR

	assert.Equal(t, fallback.Synthesize(req), fallback.Synthesize(req))
}

func TestSynthesize_LineItemsReconcileWithTotal(t *testing.T) {
	currencies := []domain.Currency{domain.CurrencyINR, domain.CurrencyUSD, domain.CurrencyEUR, domain.CurrencyGBP, domain.CurrencyJPY}
	budgets := []domain.Budget{domain.BudgetCheap, domain.BudgetModerate, domain.BudgetLuxury}

	for _, c := range currencies {
		for _, b := range budgets {
			for days := domain.MinTripDays; days <= domain.MaxTripDays; days++ {
				req := domain.TripRequest{Destination: "Kyoto", Days: days, Budget: b, TravelType: domain.TravelTypeFamily, Currency: c}
				trip := fallback.Synthesize(req)

				sum := trip.Hotels[0].PricePerNight * float64(days)
				for _, d := range trip.Itinerary {
					var items float64
					for _, a := range d.Activities {
						assert.GreaterOrEqual(t, a.Cost, 0.0)
						items += a.Cost
					}
					for _, m := range d.Meals {
						items += m.Cost
					}
					assert.Equal(t, items, d.DailyCost, "%s/%s/%d day %d", c, b, days, d.Day)
					sum += items
				}
				assert.Equal(t, trip.TotalCost, sum, "%s/%s/%d", c, b, days)
			}
		}
	}
}

func TestDay_OutsideRequestedRange(t *testing.T) {
	day := fallback.Day(goaRequest(), 5)

	assert.Equal(t, 5, day.Day)
	assert.Equal(t, "day-5-activity-2", day.Activities[1].ID)
	assert.Equal(t, 2000.0, day.DailyCost)
}

func TestCategoryImage(t *testing.T) {
	assert.Contains(t, fallback.CategoryImage("Food"), "/1640777/")
	assert.Contains(t, fallback.CategoryImage("nature"), "/3889855/")
	assert.Equal(t, fallback.CategoryImage("sightseeing"), fallback.CategoryImage("underwater basket weaving"))
	assert.Contains(t, fallback.DefaultTripImage(), "w=400")
}

func TestDefaults(t *testing.T) {
	req := goaRequest()

	h := fallback.DefaultHotel(req, 2)
	assert.Equal(t, "hotel-2", h.ID)
	assert.Equal(t, "Recommended Hotel 2", h.Name)
	assert.Equal(t, 4.0, h.Rating)
	assert.Equal(t, 1500.0, h.PricePerNight)

	a := fallback.DefaultActivity(req, 3, 1)
	assert.Equal(t, "day-3-activity-1", a.ID)
	assert.Equal(t, "Goa, India", a.Location)
	assert.Equal(t, 500.0, a.Cost)

	m := fallback.DefaultMeal(req, domain.MealDinner)
	assert.Equal(t, "Local dinner", m.Name)
	assert.Equal(t, 600.0, m.Cost)

	assert.Equal(t, "Local restaurant", fallback.DefaultMeal(req, "").Name)
	assert.Equal(t, "Discover the amazing Goa, India with this carefully crafted 3-day itinerary.", fallback.DefaultOverview(req))
}
