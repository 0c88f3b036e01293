package domain

import "time"

// Profile is the single traveller profile shown in the profile and settings views.
type Profile struct {
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Avatar   string    `json:"avatar"`
	Bio      string    `json:"bio"`
	Location string    `json:"location"`
	JoinDate time.Time `json:"joinDate"`
}

// DefaultProfile is the profile a fresh session starts with.
func DefaultProfile() Profile {
	return Profile{
		Name:     "Journey Explorer",
		Email:    "explorer@journey.com",
		Bio:      "Travel Enthusiast & Adventure Seeker",
		Location: "India",
		JoinDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}
