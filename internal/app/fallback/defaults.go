package fallback

import (
	"fmt"
	"strings"

	"github.com/journeyexplore/trip-planner-api/internal/app/costs"
	"github.com/journeyexplore/trip-planner-api/internal/domain"
)

const pexelsFormat = "https://images.pexels.com/photos/%d/pexels-photo-%d.jpeg?auto=compress&cs=tinysrgb&w=%d"

func pexels(id, width int) string {
	return fmt.Sprintf(pexelsFormat, id, id, width)
}

// DefaultCategory is assigned to activities whose category is missing.
const DefaultCategory = "sightseeing"

var categoryImages = map[string]int{
	"sightseeing": 1285625,
	"culture":     1659438,
	"adventure":   2166553,
	"nature":      3889855,
	"food":        1640777,
	"shopping":    1005638,
	"relaxation":  3155666,
}

const defaultCategoryImage = 1285625

// CategoryImage maps an activity category to its display image. Matching is
// case-insensitive; unknown categories get the default landscape.
func CategoryImage(category string) string {
	id, ok := categoryImages[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		id = defaultCategoryImage
	}
	return pexels(id, 300)
}

// HotelImage is the image attached to every hotel.
func HotelImage() string {
	return pexels(258154, 300)
}

// DefaultTripImage is the saved-trip card image used when a trip has no hotel.
func DefaultTripImage() string {
	return pexels(1285625, 400)
}

// TripImage returns the image of a saved-trip card for the given photo id.
func TripImage(photoID int) string {
	return pexels(photoID, 400)
}

// DefaultOverview is used when the model supplies no overview.
func DefaultOverview(req domain.TripRequest) string {
	return fmt.Sprintf("Discover the amazing %s with this carefully crafted %d-day itinerary.", req.Destination, req.Days)
}

const DefaultBestTimeToVisit = "Year-round destination with seasonal highlights"

// DefaultLocalTips is used when the model supplies no usable tips.
func DefaultLocalTips() []string {
	return []string{"Try local cuisine", "Learn basic local phrases", "Respect local customs"}
}

// DefaultHotel is the hotel a model-supplied entry is merged over. n is 1-based.
func DefaultHotel(req domain.TripRequest, n int) domain.Hotel {
	return domain.Hotel{
		ID:            fmt.Sprintf("hotel-%d", n),
		Name:          fmt.Sprintf("Recommended Hotel %d", n),
		Rating:        4.0,
		PricePerNight: costs.BaselineHotelPrice(req.Budget, req.Currency),
		Location:      "City Center",
		Amenities:     []string{"WiFi", "Restaurant", "Room Service"},
		Description:   "Comfortable accommodation with modern amenities",
		Image:         HotelImage(),
	}
}

// DefaultActivity is the activity a model-supplied entry is merged over. n is 1-based.
func DefaultActivity(req domain.TripRequest, day, n int) domain.Activity {
	return domain.Activity{
		ID:          ActivityID(day, n),
		Name:        fmt.Sprintf("Activity %d", n),
		Description: "Exciting local experience",
		Duration:    "2-3 hours",
		Cost:        costs.BaselineActivityCost(req.Budget, req.Currency),
		Location:    req.Destination,
		Category:    DefaultCategory,
		Image:       CategoryImage(DefaultCategory),
		Tips:        "Enjoy this amazing experience!",
	}
}

// DefaultMeal is the meal a model-supplied entry is merged over. typ must already
// be resolved (supplied or positional).
func DefaultMeal(req domain.TripRequest, typ domain.MealType) domain.Meal {
	name := "restaurant"
	if typ != "" {
		name = string(typ)
	}
	return domain.Meal{
		Name:        "Local " + name,
		Type:        typ,
		Cost:        costs.BaselineMealCost(req.Budget, typ, req.Currency),
		Location:    "Local area",
		Cuisine:     "Local cuisine",
		Description: "Delicious local food experience",
	}
}

func ActivityID(day, n int) string {
	return fmt.Sprintf("day-%d-activity-%d", day, n)
}

func MealID(day int, key string) string {
	return fmt.Sprintf("day-%d-meal-%s", day, key)
}
