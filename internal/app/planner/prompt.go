package planner

import (
	"fmt"

	"github.com/journeyexplore/trip-planner-api/internal/domain"
)

const promptTemplate = `
Create a detailed %[2]d-day travel itinerary for %[1]s with the following requirements:

**Trip Details:**
- Destination: %[1]s
- Duration: %[2]d days
- Budget: %[3]s
- Travel Type: %[4]s
- Currency: %[5]s

**Requirements:**
1. Provide 2-3 hotel recommendations with realistic pricing in %[5]s
2. Create a day-by-day itinerary with 2-3 activities per day
3. Include meal recommendations (breakfast, lunch, dinner) for each day
4. Provide realistic cost estimates in %[5]s
5. Include local tips and best time to visit information
6. Consider the travel type (%[4]s) when suggesting activities

**Budget Guidelines:**
- Cheap: Budget-friendly options, local experiences, affordable accommodations
- Moderate: Mid-range options, mix of popular and local attractions
- Luxury: Premium experiences, high-end accommodations, exclusive activities

**Response Format (JSON):**
{
  "overview": "Brief overview of the destination and trip highlights",
  "bestTimeToVisit": "Best time to visit this destination",
  "localTips": ["tip1", "tip2", "tip3"],
  "hotels": [
    {
      "name": "Hotel Name",
      "rating": 4.5,
      "pricePerNight": 5000,
      "location": "Area name",
      "amenities": ["WiFi", "Pool", "Restaurant"],
      "description": "Brief hotel description"
    }
  ],
  "itinerary": [
    {
      "day": 1,
      "activities": [
        {
          "name": "Activity Name",
          "description": "Detailed description",
          "duration": "2-3 hours",
          "cost": 1000,
          "location": "Specific location",
          "category": "sightseeing",
          "tips": "Local tips for this activity"
        }
      ],
      "meals": [
        {
          "name": "Restaurant/Place Name",
          "type": "breakfast",
          "cost": 300,
          "location": "Area name",
          "cuisine": "Cuisine type",
          "description": "Brief description"
        }
      ]
    }
  ],
  "totalCost": 25000
}

Please ensure all costs are realistic for %[1]s and in %[5]s. Make the itinerary engaging and suitable for %[4]s travelers with a %[3]s budget.
`

// BuildPrompt renders the model prompt for req. Every request field is embedded
// along with the JSON shape the reply must follow.
func BuildPrompt(req domain.TripRequest) string {
	return fmt.Sprintf(promptTemplate, req.Destination, req.Days, req.Budget, req.TravelType, req.Currency)
}
