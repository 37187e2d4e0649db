package types

import (
	"time"

	"github.com/google/uuid"
)

// TimeOfDay is the optional slot tag attached to an activity.
type TimeOfDay string

const (
	TimeOfDayMorning   TimeOfDay = "morning"
	TimeOfDayAfternoon TimeOfDay = "afternoon"
	TimeOfDayEvening   TimeOfDay = "evening"
)

// Activity is a single line item inside a day plan.
type Activity struct {
	Description string    `json:"description"`
	TimeOfDay   TimeOfDay `json:"time_of_day,omitempty"`
}

// DayPlan holds the activities extracted for one day, in the order the
// model produced them.
type DayPlan struct {
	Day        int        `json:"day"`
	Title      string     `json:"title,omitempty"`
	Activities []Activity `json:"activities"`
}

// ItineraryResponse is the parsed form of a raw model response. It is a
// pure function of the raw text: regenerating produces a new instance,
// nothing is mutated in place.
type ItineraryResponse struct {
	ID          uuid.UUID `json:"id,omitempty"`
	Destination string    `json:"destination"`
	Days        []DayPlan `json:"days"`
	RawText     string    `json:"raw_text"`
	Warnings    []string  `json:"warnings,omitempty"`
	ModelUsed   string    `json:"model_used,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// SavedItinerary is the persisted row, pairing the request that
// produced an itinerary with the parsed result.
type SavedItinerary struct {
	ID        uuid.UUID         `json:"id"`
	Request   TripRequest       `json:"request"`
	Itinerary ItineraryResponse `json:"itinerary"`
	CreatedAt time.Time         `json:"created_at"`
}

// LlmInteraction records one round trip to the model for audit and
// latency tracking.
type LlmInteraction struct {
	ID           uuid.UUID `json:"id,omitempty"`
	Prompt       string    `json:"prompt"`
	ResponseText string    `json:"response_text"`
	ModelUsed    string    `json:"model_used"`
	LatencyMs    int       `json:"latency_ms"`
	Destination  string    `json:"destination,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}
