package itinerary

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"travel-companion/internal/types"
)

// The model is asked for "Day N" headers but in practice they arrive as
// plain text, markdown headings or bold spans. All three are accepted.
var (
	dayHeaderRe = regexp.MustCompile(`(?i)^(?:#{1,6}\s*)?(?:\*\*)?\s*day\s+(\d+)\s*(?:[:\-–.]\s*)?(.*?)(?:\*\*)?\s*$`)
	bulletRe    = regexp.MustCompile(`^\s*(?:[-*•]|\d+\.)\s+(.*)$`)
	timeTagRe   = regexp.MustCompile(`(?i)^(?:\*\*)?\s*(morning|afternoon|evening)\s*(?:\*\*)?\s*[:\-–]\s*(.*)$`)
	clockRe     = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})\s*(?:am|pm|AM|PM)?\s*[:\-–]?\s*(.*)$`)
)

// ParseItinerary extracts the day-by-day structure out of a raw model
// response. Best effort: sections that do not parse are dropped and
// reported as warnings, never as an error.
func ParseItinerary(destination, raw string) types.ItineraryResponse {
	resp := types.ItineraryResponse{
		Destination: destination,
		RawText:     raw,
	}

	if strings.TrimSpace(raw) == "" {
		resp.Warnings = append(resp.Warnings, "empty response: no itinerary content to parse")
		return resp
	}

	var current *types.DayPlan
	dropped := 0

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if m := dayHeaderRe.FindStringSubmatch(trimmed); m != nil {
			if current != nil {
				resp.Days = append(resp.Days, *current)
			}
			dayNum, _ := strconv.Atoi(m[1])
			current = &types.DayPlan{
				Day:   dayNum,
				Title: strings.TrimSpace(strings.Trim(m[2], "*")),
			}
			continue
		}

		if current == nil {
			// Preamble before the first day header carries no activities.
			continue
		}

		if activity, ok := parseActivityLine(trimmed); ok {
			current.Activities = append(current.Activities, activity)
		} else {
			dropped++
		}
	}
	if current != nil {
		resp.Days = append(resp.Days, *current)
	}

	if len(resp.Days) == 0 {
		resp.Warnings = append(resp.Warnings, "no day headers found: itinerary left unstructured")
	}
	if dropped > 0 {
		resp.Warnings = append(resp.Warnings, fmt.Sprintf("dropped %d unparseable line(s)", dropped))
	}

	return resp
}

// parseActivityLine turns one line into an activity. Bullet lines and
// time-prefixed lines always qualify; bare prose qualifies when it is
// substantial enough to be an activity rather than a fragment.
func parseActivityLine(line string) (types.Activity, bool) {
	text := line
	if m := bulletRe.FindStringSubmatch(line); m != nil {
		text = m[1]
	}

	var tag types.TimeOfDay
	if m := timeTagRe.FindStringSubmatch(text); m != nil {
		tag = types.TimeOfDay(strings.ToLower(m[1]))
		text = strings.TrimSpace(m[2])
	} else if m := clockRe.FindStringSubmatch(text); m != nil {
		if hour, err := strconv.Atoi(m[1]); err == nil {
			tag = timeOfDayForHour(hour, m[0])
			text = strings.TrimSpace(m[3])
		}
	}

	text = strings.TrimSpace(strings.Trim(text, "*"))
	if text == "" {
		return types.Activity{}, false
	}
	// A bare line with fewer than four words is most likely a separator
	// or stray markdown, not an activity.
	if !bulletRe.MatchString(line) && tag == "" && len(strings.Fields(text)) < 4 {
		return types.Activity{}, false
	}

	return types.Activity{Description: text, TimeOfDay: tag}, true
}

func timeOfDayForHour(hour int, original string) types.TimeOfDay {
	lower := strings.ToLower(original)
	if strings.Contains(lower, "pm") && hour < 12 {
		hour += 12
	}
	switch {
	case hour >= 5 && hour < 12:
		return types.TimeOfDayMorning
	case hour >= 12 && hour < 18:
		return types.TimeOfDayAfternoon
	default:
		return types.TimeOfDayEvening
	}
}
