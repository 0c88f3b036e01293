package domain

import "testing"

func TestSlugifyDestination(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Goa, India":    "goa__india",
		"Tokyo":         "tokyo",
		"New York 2025": "new_york_2025",
		"Zürich":        "z_rich",
		"":              "",
	}
	for in, want := range cases {
		if got := SlugifyDestination(in); got != want {
			t.Fatalf("SlugifyDestination(%q)=%q, want %q", in, got, want)
		}
	}
}

func TestDayPlan_Recompute_SumsActivitiesAndMeals(t *testing.T) {
	t.Parallel()

	d := DayPlan{
		Day:        1,
		Activities: []Activity{{Cost: 500}, {Cost: 0}, {Cost: 250.5}},
		Meals:      []Meal{{Cost: 200}, {Cost: 400}},
		DailyCost:  99999,
	}
	d.Recompute()
	if d.DailyCost != 1350.5 {
		t.Fatalf("dailyCost=%v, want 1350.5", d.DailyCost)
	}
}

func TestEnumValidity(t *testing.T) {
	t.Parallel()

	if !BudgetLuxury.Valid() || Budget("premium").Valid() {
		t.Fatalf("budget validity mismatch")
	}
	if !TravelTypeFriends.Valid() || TravelType("business").Valid() {
		t.Fatalf("travel type validity mismatch")
	}
	if !CurrencyJPY.Valid() || Currency("AUD").Valid() {
		t.Fatalf("currency validity mismatch")
	}
	if !MealDinner.Valid() || MealType("brunch").Valid() {
		t.Fatalf("meal type validity mismatch")
	}
	if !TripStatusCompleted.Valid() || TripStatus("DRAFT").Valid() {
		t.Fatalf("status validity mismatch")
	}
}
