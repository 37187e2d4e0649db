package itinerary

import (
	"fmt"
	"strings"

	"travel-companion/internal/types"
)

// buildItineraryPrompt embeds every TripRequest field into the fixed
// template the model is asked to follow. weatherSummary is optional.
func buildItineraryPrompt(req types.TripRequest, weatherSummary string) string {
	duration := req.DurationDays()

	weatherPart := ""
	if weatherSummary != "" {
		weatherPart = fmt.Sprintf("\n        Weather Information: %s\n", weatherSummary)
	}

	return fmt.Sprintf(`
        Create a detailed %d-day travel itinerary for %s.

        Travel Details:
        - Destination: %s
        - Dates: %s to %s
        - Duration: %d days
        - Budget: %s
        - Traveler Type: %s
        - Interests: %s
        %s
        Please provide:
        1. Day-by-day detailed itinerary with specific activities and timings
        2. Recommended restaurants and dining options
        3. Transportation suggestions between locations
        4. Estimated costs for each activity (aligned with budget)
        5. Insider tips and local recommendations
        6. Best times to visit attractions to avoid crowds

        Format the response clearly with "Day N" headers and bulleted activities,
        prefixing activities with Morning:, Afternoon: or Evening: where it makes sense.`,
		duration, req.Destination,
		req.Destination,
		req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"),
		duration,
		req.Budget.Label(),
		req.TravelerType,
		strings.Join(req.Interests, ", "),
		weatherPart,
	)
}

// ValidateTripRequest runs the presence checks that must pass before
// any network call is made.
func ValidateTripRequest(req types.TripRequest) error {
	if strings.TrimSpace(req.Destination) == "" {
		return fmt.Errorf("%w: destination is required", types.ErrValidation)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", types.ErrValidation)
	}
	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: end date must not be before start date", types.ErrValidation)
	}
	if len(req.Interests) == 0 {
		return fmt.Errorf("%w: at least one interest is required", types.ErrValidation)
	}
	return nil
}
