package types

import (
	"time"
)

// BudgetTier matches the daily-spend ranges offered on the trip form.
type BudgetTier string

const (
	BudgetTierBudget   BudgetTier = "budget"    // $0-50/day
	BudgetTierMidRange BudgetTier = "mid-range" // $50-150/day
	BudgetTierLuxury   BudgetTier = "luxury"    // $150+/day
)

// Label returns the human-readable form used inside prompts.
func (b BudgetTier) Label() string {
	switch b {
	case BudgetTierBudget:
		return "Budget ($0-50/day)"
	case BudgetTierMidRange:
		return "Mid-range ($50-150/day)"
	case BudgetTierLuxury:
		return "Luxury ($150+/day)"
	default:
		return string(b)
	}
}

type TravelerType string

const (
	TravelerSolo     TravelerType = "solo"
	TravelerCouple   TravelerType = "couple"
	TravelerFamily   TravelerType = "family"
	TravelerFriends  TravelerType = "friends"
	TravelerBusiness TravelerType = "business"
)

// TripRequest is the structured form input an itinerary is generated
// from. It is treated as immutable once it passes validation.
type TripRequest struct {
	Destination  string       `json:"destination"`
	StartDate    time.Time    `json:"start_date"`
	EndDate      time.Time    `json:"end_date"`
	Budget       BudgetTier   `json:"budget"`
	TravelerType TravelerType `json:"traveler_type"`
	Interests    []string     `json:"interests"`
}

// DurationDays is inclusive of both endpoints, so a same-day trip is 1 day.
func (t TripRequest) DurationDays() int {
	return int(t.EndDate.Sub(t.StartDate).Hours()/24) + 1
}
