package planner

import (
	"fmt"
	"math"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/journeyexplore/trip-planner-api/internal/app/costs"
	"github.com/journeyexplore/trip-planner-api/internal/app/fallback"
	"github.com/journeyexplore/trip-planner-api/internal/domain"
)

// Field readers. A field counts as present only when it has the expected JSON
// type; empty strings, negative numbers and wrongly typed values are absent.

func text(r gjson.Result) (string, bool) {
	if r.Type != gjson.String {
		return "", false
	}
	s := strings.TrimSpace(r.Str)
	return s, s != ""
}

func cost(r gjson.Result) (float64, bool) {
	if r.Type != gjson.Number || r.Num < 0 || math.IsInf(r.Num, 0) {
		return 0, false
	}
	return r.Num, true
}

func rating(r gjson.Result) (float64, bool) {
	if r.Type != gjson.Number || r.Num < 0 || r.Num > 5 {
		return 0, false
	}
	return r.Num, true
}

func dayNumber(r gjson.Result) (int, bool) {
	if r.Type != gjson.Number || r.Num < 1 || r.Num != math.Trunc(r.Num) || r.Num > math.MaxInt32 {
		return 0, false
	}
	return int(r.Num), true
}

func textList(r gjson.Result) ([]string, bool) {
	if !r.IsArray() {
		return nil, false
	}
	var out []string
	for _, el := range r.Array() {
		if s, ok := text(el); ok {
			out = append(out, s)
		}
	}
	return out, len(out) > 0
}

func objects(r gjson.Result) []gjson.Result {
	if !r.IsArray() {
		return nil
	}
	var out []gjson.Result
	for _, el := range r.Array() {
		if el.IsObject() {
			out = append(out, el)
		}
	}
	return out
}

func setText(dst *string, r gjson.Result) {
	if s, ok := text(r); ok {
		*dst = s
	}
}

func setCost(dst *float64, r gjson.Result) {
	if v, ok := cost(r); ok {
		*dst = v
	}
}

// merge overlays the model document onto per-field defaults and derives every
// computed field. The result satisfies all GeneratedTrip invariants for a
// validated request.
func merge(req domain.TripRequest, doc gjson.Result) domain.GeneratedTrip {
	trip := domain.GeneratedTrip{
		Destination:     req.Destination,
		Days:            req.Days,
		Budget:          req.Budget,
		TravelType:      req.TravelType,
		Currency:        req.Currency,
		TotalCost:       costs.EstimatedTotal(req.Budget, req.Days, req.Currency),
		Overview:        fallback.DefaultOverview(req),
		BestTimeToVisit: fallback.DefaultBestTimeToVisit,
		LocalTips:       fallback.DefaultLocalTips(),
	}

	setText(&trip.Overview, doc.Get("overview"))
	setText(&trip.BestTimeToVisit, doc.Get("bestTimeToVisit"))
	if tips, ok := textList(doc.Get("localTips")); ok {
		trip.LocalTips = tips
	}
	if v, ok := cost(doc.Get("totalCost")); ok && v > 0 {
		trip.TotalCost = v
	}

	trip.Hotels = mergeHotels(req, objects(doc.Get("hotels")))
	trip.Itinerary = mergeItinerary(req, objects(doc.Get("itinerary")))
	return trip
}

func mergeHotels(req domain.TripRequest, src []gjson.Result) []domain.Hotel {
	if len(src) == 0 {
		return []domain.Hotel{fallback.Hotel(req)}
	}
	hotels := make([]domain.Hotel, 0, len(src))
	for i, h := range src {
		hotel := fallback.DefaultHotel(req, i+1)
		setText(&hotel.Name, h.Get("name"))
		if v, ok := rating(h.Get("rating")); ok {
			hotel.Rating = v
		}
		setCost(&hotel.PricePerNight, h.Get("pricePerNight"))
		setText(&hotel.Location, h.Get("location"))
		if a, ok := textList(h.Get("amenities")); ok {
			hotel.Amenities = a
		}
		setText(&hotel.Description, h.Get("description"))
		hotels = append(hotels, hotel)
	}
	return hotels
}

// mergeItinerary keeps model days numbered 1 through MaxTripDays, first
// occurrence wins. Every day from 1 up to the larger of the requested count
// and the last kept day is present; gaps get a synthesized day.
func mergeItinerary(req domain.TripRequest, src []gjson.Result) []domain.DayPlan {
	byDay := make(map[int]domain.DayPlan, len(src))
	last := req.Days
	for _, d := range src {
		n, ok := dayNumber(d.Get("day"))
		if !ok || n > domain.MaxTripDays {
			continue
		}
		if _, dup := byDay[n]; dup {
			continue
		}
		byDay[n] = mergeDay(req, n, d)
		last = max(last, n)
	}

	days := make([]domain.DayPlan, 0, last)
	for n := 1; n <= last; n++ {
		d, ok := byDay[n]
		if !ok {
			d = fallback.Day(req, n)
		}
		days = append(days, d)
	}
	return days
}

func mergeDay(req domain.TripRequest, n int, src gjson.Result) domain.DayPlan {
	synthesized := fallback.Day(req, n)
	day := domain.DayPlan{Day: n}

	if acts := objects(src.Get("activities")); len(acts) > 0 {
		day.Activities = make([]domain.Activity, 0, len(acts))
		for i, a := range acts {
			day.Activities = append(day.Activities, mergeActivity(req, n, i+1, a))
		}
	} else {
		day.Activities = synthesized.Activities
	}

	if meals := objects(src.Get("meals")); len(meals) > 0 {
		day.Meals = mergeMeals(req, n, meals)
	} else {
		day.Meals = synthesized.Meals
	}

	day.Recompute()
	return day
}

func mergeActivity(req domain.TripRequest, day, n int, src gjson.Result) domain.Activity {
	a := fallback.DefaultActivity(req, day, n)
	setText(&a.Name, src.Get("name"))
	setText(&a.Description, src.Get("description"))
	setText(&a.Duration, src.Get("duration"))
	setCost(&a.Cost, src.Get("cost"))
	setText(&a.Location, src.Get("location"))
	setText(&a.Category, src.Get("category"))
	setText(&a.Tips, src.Get("tips"))
	a.Image = fallback.CategoryImage(a.Category)
	return a
}

func mergeMeals(req domain.TripRequest, day int, src []gjson.Result) []domain.Meal {
	meals := make([]domain.Meal, 0, len(src))
	seen := make(map[string]int, len(src))
	for i, m := range src {
		typ, key := mealType(m.Get("type"), i)

		meal := fallback.DefaultMeal(req, typ)
		setText(&meal.Name, m.Get("name"))
		setCost(&meal.Cost, m.Get("cost"))
		setText(&meal.Location, m.Get("location"))
		setText(&meal.Cuisine, m.Get("cuisine"))
		setText(&meal.Description, m.Get("description"))

		seen[key]++
		if c := seen[key]; c > 1 {
			key = fmt.Sprintf("%s-%d", key, c)
		}
		meal.ID = fallback.MealID(day, key)
		meals = append(meals, meal)
	}
	return meals
}

// mealType resolves a meal's type and id key. A recognised model type is used
// for both; otherwise the type comes from position (lunch past the third meal)
// and the key is the 0-based index.
func mealType(r gjson.Result, index int) (domain.MealType, string) {
	if s, ok := text(r); ok {
		if t := domain.MealType(strings.ToLower(s)); t.Valid() {
			return t, string(t)
		}
	}
	t := domain.MealLunch
	if index < len(domain.MealOrder) {
		t = domain.MealOrder[index]
	}
	return t, fmt.Sprint(index)
}
