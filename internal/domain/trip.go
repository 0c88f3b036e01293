package domain

import (
	"slices"
	"time"
)

type Budget string

const (
	BudgetCheap    Budget = "cheap"
	BudgetModerate Budget = "moderate"
	BudgetLuxury   Budget = "luxury"
)

func (b Budget) Valid() bool {
	switch b {
	case BudgetCheap, BudgetModerate, BudgetLuxury:
		return true
	default:
		return false
	}
}

type TravelType string

const (
	TravelTypeSolo    TravelType = "solo"
	TravelTypeCouple  TravelType = "couple"
	TravelTypeFamily  TravelType = "family"
	TravelTypeFriends TravelType = "friends"
)

func (t TravelType) Valid() bool {
	switch t {
	case TravelTypeSolo, TravelTypeCouple, TravelTypeFamily, TravelTypeFriends:
		return true
	default:
		return false
	}
}

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
	CurrencyINR Currency = "INR"
)

func (c Currency) Valid() bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyJPY, CurrencyINR:
		return true
	default:
		return false
	}
}

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

// MealOrder is the positional meal assignment used when a meal type is unknown.
var MealOrder = []MealType{MealBreakfast, MealLunch, MealDinner}

func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner:
		return true
	default:
		return false
	}
}

type TripStatus string

const (
	TripStatusSaved     TripStatus = "saved"
	TripStatusPlanning  TripStatus = "planning"
	TripStatusCompleted TripStatus = "completed"
)

func (s TripStatus) Valid() bool {
	switch s {
	case TripStatusSaved, TripStatusPlanning, TripStatusCompleted:
		return true
	default:
		return false
	}
}

const (
	MinTripDays = 1
	MaxTripDays = 30
)

// TripRequest holds the user-chosen generation parameters. It is never mutated
// once validated.
type TripRequest struct {
	Destination string     `json:"destination" yaml:"destination"`
	Days        int        `json:"days" yaml:"days"`
	Budget      Budget     `json:"budget" yaml:"budget"`
	TravelType  TravelType `json:"travelType" yaml:"travelType"`
	Currency    Currency   `json:"currency" yaml:"currency"`
}

// GeneratedTrip is a fully populated itinerary, whether it came from the model or
// from the fallback synthesizer.
type GeneratedTrip struct {
	Destination     string     `json:"destination" yaml:"destination"`
	Days            int        `json:"days" yaml:"days"`
	Budget          Budget     `json:"budget" yaml:"budget"`
	TravelType      TravelType `json:"travelType" yaml:"travelType"`
	Currency        Currency   `json:"currency" yaml:"currency"`
	TotalCost       float64    `json:"totalCost" yaml:"totalCost"`
	Overview        string     `json:"overview" yaml:"overview"`
	BestTimeToVisit string     `json:"bestTimeToVisit" yaml:"bestTimeToVisit"`
	LocalTips       []string   `json:"localTips" yaml:"localTips"`
	Hotels          []Hotel    `json:"hotels" yaml:"hotels"`
	Itinerary       []DayPlan  `json:"itinerary" yaml:"itinerary"`
}

type Hotel struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Rating        float64  `json:"rating" yaml:"rating"`
	PricePerNight float64  `json:"pricePerNight" yaml:"pricePerNight"`
	Location      string   `json:"location" yaml:"location"`
	Amenities     []string `json:"amenities" yaml:"amenities"`
	Description   string   `json:"description" yaml:"description"`
	Image         string   `json:"image" yaml:"image"`
}

// DayPlan is one itinerary day. DailyCost is derived; use Recompute after
// changing activities or meals.
type DayPlan struct {
	Day        int        `json:"day" yaml:"day"`
	Activities []Activity `json:"activities" yaml:"activities"`
	Meals      []Meal     `json:"meals" yaml:"meals"`
	DailyCost  float64    `json:"dailyCost" yaml:"dailyCost"`
}

// Recompute sets DailyCost to the sum of the day's activity and meal costs.
func (d *DayPlan) Recompute() {
	var sum float64
	for _, a := range d.Activities {
		sum += a.Cost
	}
	for _, m := range d.Meals {
		sum += m.Cost
	}
	d.DailyCost = sum
}

type Activity struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Duration    string  `json:"duration" yaml:"duration"`
	Cost        float64 `json:"cost" yaml:"cost"`
	Location    string  `json:"location" yaml:"location"`
	Category    string  `json:"category" yaml:"category"`
	Image       string  `json:"image" yaml:"image"`
	Tips        string  `json:"tips" yaml:"tips"`
}

type Meal struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Type        MealType `json:"type" yaml:"type"`
	Cost        float64  `json:"cost" yaml:"cost"`
	Location    string   `json:"location" yaml:"location"`
	Cuisine     string   `json:"cuisine" yaml:"cuisine"`
	Description string   `json:"description" yaml:"description"`
}

// SavedTrip is a GeneratedTrip the user committed to their trip list.
type SavedTrip struct {
	GeneratedTrip `yaml:",inline"`

	ID        TripID     `json:"id" yaml:"id"`
	CreatedAt time.Time  `json:"createdAt" yaml:"createdAt"`
	Status    TripStatus `json:"status" yaml:"status"`
	Image     string     `json:"image" yaml:"image"`
}

// TripStats aggregates the saved trip list for the dashboard views.
type TripStats struct {
	TripCount int     `json:"tripCount"`
	TotalDays int     `json:"totalDays"`
	TotalCost float64 `json:"totalCost"`
}

// Clone returns a deep copy of t.
func (t GeneratedTrip) Clone() GeneratedTrip {
	out := t
	out.LocalTips = slices.Clone(t.LocalTips)
	if t.Hotels != nil {
		out.Hotels = make([]Hotel, len(t.Hotels))
		for i, h := range t.Hotels {
			h.Amenities = slices.Clone(h.Amenities)
			out.Hotels[i] = h
		}
	}
	if t.Itinerary != nil {
		out.Itinerary = make([]DayPlan, len(t.Itinerary))
		for i, d := range t.Itinerary {
			d.Activities = slices.Clone(d.Activities)
			d.Meals = slices.Clone(d.Meals)
			out.Itinerary[i] = d
		}
	}
	return out
}
