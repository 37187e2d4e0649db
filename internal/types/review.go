package types

import (
	"time"

	"github.com/google/uuid"
)

// Sentiment is the polarity label assigned to a single review.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// ReviewRecord is one review plus its derived classification.
// Read-only after analysis.
type ReviewRecord struct {
	Text       string    `json:"text"`
	Sentiment  Sentiment `json:"sentiment"`
	Confidence float64   `json:"confidence"`
}

// SentimentDistribution holds per-label counts across an analysis run.
type SentimentDistribution struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// ReviewAnalysis aggregates the records of one analysis request.
type ReviewAnalysis struct {
	ID           uuid.UUID             `json:"id,omitempty"`
	TotalReviews int                   `json:"total_reviews"`
	Records      []ReviewRecord        `json:"records"`
	Distribution SentimentDistribution `json:"sentiment_distribution"`
	Percentages  map[string]float64    `json:"sentiment_percentages"`
	Insights     []string              `json:"insights"`
	Warnings     []string              `json:"warnings,omitempty"`
	CreatedAt    time.Time             `json:"created_at,omitempty"`
}
