// Package costs holds the fixed price tables used to estimate trip costs.
//
// Base prices are in INR. Every monetary output is converted with the currency
// multiplier and rounded to a whole unit.
package costs

import (
	"math"
	"strings"

	"github.com/journeyexplore/trip-planner-api/internal/domain"
)

var multipliers = map[domain.Currency]float64{
	domain.CurrencyINR: 1,
	domain.CurrencyUSD: 0.012,
	domain.CurrencyEUR: 0.011,
	domain.CurrencyGBP: 0.0095,
	domain.CurrencyJPY: 1.8,
}

var symbols = map[domain.Currency]string{
	domain.CurrencyINR: "₹",
	domain.CurrencyUSD: "$",
	domain.CurrencyEUR: "€",
	domain.CurrencyGBP: "£",
	domain.CurrencyJPY: "¥",
}

// Daily is the per-day baseline for a budget tier: spending money for activities
// and meals, and one hotel night.
type Daily struct {
	Daily float64
	Hotel float64
}

var dailyBase = map[domain.Budget]Daily{
	domain.BudgetCheap:    {Daily: 2000, Hotel: 1500},
	domain.BudgetModerate: {Daily: 4000, Hotel: 3500},
	domain.BudgetLuxury:   {Daily: 8000, Hotel: 7000},
}

var activityBase = map[domain.Budget]float64{
	domain.BudgetCheap:    500,
	domain.BudgetModerate: 1000,
	domain.BudgetLuxury:   2000,
}

var mealBase = map[domain.Budget]map[domain.MealType]float64{
	domain.BudgetCheap:    {domain.MealBreakfast: 200, domain.MealLunch: 400, domain.MealDinner: 600},
	domain.BudgetModerate: {domain.MealBreakfast: 400, domain.MealLunch: 800, domain.MealDinner: 1200},
	domain.BudgetLuxury:   {domain.MealBreakfast: 800, domain.MealLunch: 1500, domain.MealDinner: 2500},
}

// Multiplier converts an INR amount into currency c. Unknown currencies use 1.
func Multiplier(c domain.Currency) float64 {
	if m, ok := multipliers[c]; ok {
		return m
	}
	return 1
}

// Symbol returns the display symbol for c; unknown currencies get the rupee sign.
func Symbol(c domain.Currency) string {
	if s, ok := symbols[c]; ok {
		return s
	}
	return symbols[domain.CurrencyINR]
}

// Round rounds half away from zero to a whole currency unit.
func Round(v float64) float64 {
	return math.Round(v)
}

// BaselineDailyCost returns the INR per-day table entry for budget. Unknown tiers
// are priced as moderate.
func BaselineDailyCost(budget domain.Budget) Daily {
	if d, ok := dailyBase[budget]; ok {
		return d
	}
	return dailyBase[domain.BudgetModerate]
}

// EstimatedTotal is the whole-trip estimate: (daily + hotel) per day, converted.
func EstimatedTotal(budget domain.Budget, days int, c domain.Currency) float64 {
	d := BaselineDailyCost(budget)
	return Round((d.Daily + d.Hotel) * float64(days) * Multiplier(c))
}

// BaselineHotelPrice is the default nightly hotel price in currency c.
func BaselineHotelPrice(budget domain.Budget, c domain.Currency) float64 {
	return Round(BaselineDailyCost(budget).Hotel * Multiplier(c))
}

// BaselineActivityCost is the default price of one activity in currency c.
func BaselineActivityCost(budget domain.Budget, c domain.Currency) float64 {
	base, ok := activityBase[budget]
	if !ok {
		base = activityBase[domain.BudgetModerate]
	}
	return Round(base * Multiplier(c))
}

// BaselineMealCost is the default price of one meal in currency c. An
// unrecognized meal type is priced as lunch.
func BaselineMealCost(budget domain.Budget, meal domain.MealType, c domain.Currency) float64 {
	table, ok := mealBase[budget]
	if !ok {
		table = mealBase[domain.BudgetModerate]
	}
	base, ok := table[domain.MealType(strings.ToLower(string(meal)))]
	if !ok {
		base = table[domain.MealLunch]
	}
	return Round(base * Multiplier(c))
}
