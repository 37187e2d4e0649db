package tips

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
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

var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for tips and
// recommendation generation. Results stay free text: the model is asked
// for sectioned prose, not a structure worth enforcing.
type Service interface {
	GetTravelTips(ctx context.Context, destination string) (string, error)
	GetRestaurantRecommendations(ctx context.Context, destination string, cuisinePreferences []string) (string, error)
	GetAttractionRecommendations(ctx context.Context, destination string, interests []string) (string, error)
}

type ServiceImpl struct {
	logger          *slog.Logger
	aiClient        generativeAI.Client
	interactionRepo llmInteraction.Repository
	genConfig       *genai.GenerateContentConfig
}

func NewServiceImpl(aiClient generativeAI.Client, interactionRepo llmInteraction.Repository,
	genConfig *genai.GenerateContentConfig, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:          logger,
		aiClient:        aiClient,
		interactionRepo: interactionRepo,
		genConfig:       genConfig,
	}
}

func (s *ServiceImpl) GetTravelTips(ctx context.Context, destination string) (string, error) {
	ctx, span := otel.Tracer("TipsService").Start(ctx, "GetTravelTips")
	defer span.End()

	if strings.TrimSpace(destination) == "" {
		span.SetStatus(codes.Error, "Missing destination")
		return "", fmt.Errorf("%w: destination is required", types.ErrValidation)
	}
	span.SetAttributes(attribute.String("tips.destination", destination))

	return s.generate(ctx, destination, travelTipsPrompt(destination))
}

func (s *ServiceImpl) GetRestaurantRecommendations(ctx context.Context, destination string, cuisinePreferences []string) (string, error) {
	ctx, span := otel.Tracer("TipsService").Start(ctx, "GetRestaurantRecommendations")
	defer span.End()

	if strings.TrimSpace(destination) == "" {
		span.SetStatus(codes.Error, "Missing destination")
		return "", fmt.Errorf("%w: destination is required", types.ErrValidation)
	}
	span.SetAttributes(attribute.String("tips.destination", destination))

	return s.generate(ctx, destination, restaurantsPrompt(destination, cuisinePreferences))
}

func (s *ServiceImpl) GetAttractionRecommendations(ctx context.Context, destination string, interests []string) (string, error) {
	ctx, span := otel.Tracer("TipsService").Start(ctx, "GetAttractionRecommendations")
	defer span.End()

	if strings.TrimSpace(destination) == "" {
		span.SetStatus(codes.Error, "Missing destination")
		return "", fmt.Errorf("%w: destination is required", types.ErrValidation)
	}
	if len(interests) == 0 {
		span.SetStatus(codes.Error, "Missing interests")
		return "", fmt.Errorf("%w: at least one interest is required", types.ErrValidation)
	}
	span.SetAttributes(attribute.String("tips.destination", destination))

	return s.generate(ctx, destination, attractionsPrompt(destination, interests))
}

func (s *ServiceImpl) generate(ctx context.Context, destination, prompt string) (string, error) {
	startTime := time.Now()
	raw, err := s.aiClient.GenerateContent(ctx, prompt, s.genConfig)
	latency := time.Since(startTime)
	if m := metrics.Get(); m != nil {
		m.GenerationRequestsTotal.Add(ctx, 1)
		m.GenerationDurationSeconds.Record(ctx, latency.Seconds())
	}
	if err != nil {
		if m := metrics.Get(); m != nil {
			m.GenerationErrorsTotal.Add(ctx, 1)
		}
		return "", fmt.Errorf("failed to generate tips: %w", err)
	}

	if _, err := s.interactionRepo.SaveInteraction(ctx, types.LlmInteraction{
		Prompt:       prompt,
		ResponseText: raw,
		ModelUsed:    s.aiClient.Model(),
		LatencyMs:    int(latency.Milliseconds()),
		Destination:  destination,
	}); err != nil {
		s.logger.ErrorContext(ctx, "failed to save LLM interaction", slog.Any("error", err))
	}

	return raw, nil
}
