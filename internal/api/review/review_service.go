package review

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"google.golang.org/genai"

	"travel-companion/app/observability/metrics"
	generativeAI "travel-companion/internal/api/generative_ai"
	llmInteraction "travel-companion/internal/api/llm_interaction"
	"travel-companion/internal/types"
)

// Reviews of this length or shorter carry no classifiable signal.
const minReviewLength = 10

var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for review analytics.
type Service interface {
	AnalyzeReviews(ctx context.Context, reviewsText string) (*types.ReviewAnalysis, error)
}

type ServiceImpl struct {
	logger          *slog.Logger
	aiClient        generativeAI.Client
	repo            Repository
	interactionRepo llmInteraction.Repository
	genConfig       *genai.GenerateContentConfig
}

func NewServiceImpl(aiClient generativeAI.Client, repo Repository, interactionRepo llmInteraction.Repository,
	genConfig *genai.GenerateContentConfig, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:          logger,
		aiClient:        aiClient,
		repo:            repo,
		interactionRepo: interactionRepo,
		genConfig:       genConfig,
	}
}

// AnalyzeReviews splits the pasted blob, classifies each review with
// one blocking model call at a time, extracts overall insights, and
// persists the aggregate. A failed classification defaults the single
// review to neutral and records a warning instead of failing the run.
func (s *ServiceImpl) AnalyzeReviews(ctx context.Context, reviewsText string) (*types.ReviewAnalysis, error) {
	ctx, span := otel.Tracer("ReviewService").Start(ctx, "AnalyzeReviews")
	defer span.End()

	reviews := SplitReviews(reviewsText)
	if len(reviews) == 0 {
		span.SetStatus(codes.Error, "No reviews in input")
		return nil, fmt.Errorf("%w: no reviews found in input", types.ErrValidation)
	}
	span.SetAttributes(attribute.Int("reviews.count", len(reviews)))

	analysis := &types.ReviewAnalysis{CreatedAt: time.Now()}

	for _, text := range reviews {
		if len(text) <= minReviewLength {
			continue
		}
		record := s.classify(ctx, text)
		analysis.Records = append(analysis.Records, record)
		switch record.Sentiment {
		case types.SentimentPositive:
			analysis.Distribution.Positive++
		case types.SentimentNegative:
			analysis.Distribution.Negative++
		default:
			analysis.Distribution.Neutral++
		}
	}
	analysis.TotalReviews = len(analysis.Records)
	if analysis.TotalReviews == 0 {
		span.SetStatus(codes.Error, "No substantial reviews")
		return nil, fmt.Errorf("%w: no substantial reviews to analyze", types.ErrValidation)
	}

	overall, err := s.overallInsights(ctx, reviewsText)
	if err != nil {
		s.logger.WarnContext(ctx, "insight extraction failed", slog.Any("error", err))
		analysis.Warnings = append(analysis.Warnings, "insight extraction failed; showing sentiment summary only")
		overall = []string{"Unable to generate insights from reviews"}
	}
	analysis.Insights = append(overall, summaryInsights(analysis.Distribution, analysis.TotalReviews)...)

	analysis.Percentages = map[string]float64{
		"positive": pct(analysis.Distribution.Positive, analysis.TotalReviews),
		"neutral":  pct(analysis.Distribution.Neutral, analysis.TotalReviews),
		"negative": pct(analysis.Distribution.Negative, analysis.TotalReviews),
	}

	id, err := s.repo.SaveAnalysis(ctx, reviewsText, *analysis)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to save review analysis: %w", err)
	}
	analysis.ID = id

	span.SetStatus(codes.Ok, "Reviews analyzed")
	return analysis, nil
}

// classify runs the one-word sentiment prompt for a single review.
// Errors degrade to a low-confidence neutral record.
func (s *ServiceImpl) classify(ctx context.Context, text string) types.ReviewRecord {
	prompt := sentimentPrompt(text)

	startTime := time.Now()
	raw, err := s.aiClient.GenerateContent(ctx, prompt, s.genConfig)
	if m := metrics.Get(); m != nil {
		m.SentimentRequestsTotal.Add(ctx, 1)
		m.GenerationDurationSeconds.Record(ctx, time.Since(startTime).Seconds())
	}
	if err != nil {
		s.logger.WarnContext(ctx, "sentiment classification failed, defaulting to neutral",
			slog.Any("error", err))
		if m := metrics.Get(); m != nil {
			m.GenerationErrorsTotal.Add(ctx, 1)
		}
		return types.ReviewRecord{Text: text, Sentiment: types.SentimentNeutral, Confidence: 0}
	}

	if _, err := s.interactionRepo.SaveInteraction(ctx, types.LlmInteraction{
		Prompt:       prompt,
		ResponseText: raw,
		ModelUsed:    s.aiClient.Model(),
		LatencyMs:    int(time.Since(startTime).Milliseconds()),
	}); err != nil {
		s.logger.ErrorContext(ctx, "failed to save LLM interaction", slog.Any("error", err))
	}

	sentiment, confidence := ParseSentiment(raw)
	return types.ReviewRecord{Text: text, Sentiment: sentiment, Confidence: confidence}
}

func (s *ServiceImpl) overallInsights(ctx context.Context, reviewsText string) ([]string, error) {
	prompt := insightsPrompt(reviewsText)

	startTime := time.Now()
	raw, err := s.aiClient.GenerateContent(ctx, prompt, s.genConfig)
	if m := metrics.Get(); m != nil {
		m.GenerationRequestsTotal.Add(ctx, 1)
		m.GenerationDurationSeconds.Record(ctx, time.Since(startTime).Seconds())
	}
	if err != nil {
		if m := metrics.Get(); m != nil {
			m.GenerationErrorsTotal.Add(ctx, 1)
		}
		return nil, err
	}

	if _, err := s.interactionRepo.SaveInteraction(ctx, types.LlmInteraction{
		Prompt:       prompt,
		ResponseText: raw,
		ModelUsed:    s.aiClient.Model(),
		LatencyMs:    int(time.Since(startTime).Milliseconds()),
	}); err != nil {
		s.logger.ErrorContext(ctx, "failed to save LLM interaction", slog.Any("error", err))
	}

	return ParseInsights(raw), nil
}

func pct(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*1000) / 10
}
