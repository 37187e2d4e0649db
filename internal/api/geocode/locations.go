package geocode

import (
	"regexp"
	"strings"
)

// Verb-object patterns the model reliably produces in itinerary prose.
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:Visit|visit)\s+([A-Z][a-zA-Z'\- ]+)`),
	regexp.MustCompile(`(?:Explore|explore)\s+([A-Z][a-zA-Z'\- ]+)`),
	regexp.MustCompile(`(?:See|see)\s+([A-Z][a-zA-Z'\- ]+)`),
	regexp.MustCompile(`(?:Go to|go to)\s+([A-Z][a-zA-Z'\- ]+)`),
}

var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
}

// ExtractLocations pulls candidate place names out of itinerary text.
// Line-based and heuristic: this feeds map markers, so precision beats
// recall and anything dubious is dropped.
func ExtractLocations(text string) []string {
	seen := make(map[string]struct{})
	var locations []string

	for _, re := range locationPatterns {
		for _, match := range re.FindAllStringSubmatch(text, -1) {
			candidate := strings.TrimSpace(match[1])
			words := strings.Fields(candidate)
			if len(words) == 0 {
				continue
			}
			if _, stop := stopWords[strings.ToLower(words[0])]; stop {
				continue
			}
			// Cap at four words so a trailing clause doesn't ride along.
			if len(words) > 4 {
				candidate = strings.Join(words[:4], " ")
			}
			key := strings.ToLower(candidate)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			locations = append(locations, candidate)
		}
	}
	return locations
}
