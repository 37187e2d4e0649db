package review

import (
	"regexp"
	"strings"

	"travel-companion/internal/types"
)

var (
	numberedRe     = regexp.MustCompile(`\d+\.\s*`)
	reviewPrefixRe = regexp.MustCompile(`(?i)Review\s*:?\s*`)
	bulletPrefixRe = regexp.MustCompile(`^[•\-*]\s*`)
)

// SplitReviews breaks a pasted blob into individual reviews. Splitting
// strategies are tried in order; if none produce more than one chunk
// the whole text counts as a single review.
func SplitReviews(text string) []string {
	if candidates := cleanSplit(strings.Split(text, "\n\n")); len(candidates) > 1 {
		return candidates
	}
	if candidates := cleanSplit(numberedRe.Split(text, -1)); len(candidates) > 1 {
		return candidates
	}
	if candidates := cleanSplit(reviewPrefixRe.Split(text, -1)); len(candidates) > 1 {
		return candidates
	}
	if trimmed := strings.TrimSpace(text); trimmed != "" {
		return []string{trimmed}
	}
	return nil
}

func cleanSplit(parts []string) []string {
	var out []string
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ParseSentiment maps a raw one-word model answer onto a label plus a
// confidence score. Exact answers score high, substring rescues score
// lower, and anything else falls back to neutral.
func ParseSentiment(raw string) (types.Sentiment, float64) {
	answer := strings.ToLower(strings.TrimSpace(raw))
	answer = strings.Trim(answer, `."'`)

	switch answer {
	case "positive":
		return types.SentimentPositive, 0.9
	case "negative":
		return types.SentimentNegative, 0.9
	case "neutral":
		return types.SentimentNeutral, 0.9
	}
	switch {
	case strings.Contains(answer, "positive"):
		return types.SentimentPositive, 0.6
	case strings.Contains(answer, "negative"):
		return types.SentimentNegative, 0.6
	default:
		return types.SentimentNeutral, 0.3
	}
}

const maxInsights = 7

// ParseInsights extracts bullet points (or substantial plain lines)
// from the insights response, capped at maxInsights.
func ParseInsights(raw string) []string {
	var insights []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if bulletPrefixRe.MatchString(line) {
			if insight := strings.TrimSpace(bulletPrefixRe.ReplaceAllString(line, "")); insight != "" {
				insights = append(insights, insight)
			}
		} else if len(strings.Fields(line)) > 3 {
			insights = append(insights, line)
		}
		if len(insights) == maxInsights {
			break
		}
	}
	return insights
}

// summaryInsights derives headline statements from the distribution,
// mirroring what the dashboard shows alongside the chart.
func summaryInsights(dist types.SentimentDistribution, total int) []string {
	if total == 0 {
		return nil
	}

	var insights []string
	positivePct := float64(dist.Positive) / float64(total) * 100
	negativePct := float64(dist.Negative) / float64(total) * 100

	switch {
	case positivePct > 70:
		insights = append(insights, "Overwhelmingly positive reviews - visitors love this destination!")
	case positivePct > 50:
		insights = append(insights, "Generally positive sentiment with most visitors having good experiences")
	case negativePct > 50:
		insights = append(insights, "Concerning number of negative reviews - consider investigating common issues")
	default:
		insights = append(insights, "Mixed reviews with varied visitor experiences")
	}

	if dist.Positive > dist.Negative*2 {
		insights = append(insights, "Strong positive sentiment indicates high visitor satisfaction")
	}
	return insights
}
