package itinerary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
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

// Service defines the business logic contract for itinerary operations.
type Service interface {
	GenerateItinerary(ctx context.Context, req types.TripRequest) (*types.ItineraryResponse, error)
	GetItinerary(ctx context.Context, id uuid.UUID) (*types.SavedItinerary, error)
	ListItineraries(ctx context.Context, limit, offset int) ([]types.SavedItinerary, error)
}

// WeatherProvider is the optional forecast collaborator. A nil provider
// or a provider error only means the prompt carries no weather section.
type WeatherProvider interface {
	Summary(ctx context.Context, destination string) (string, error)
}

type ServiceImpl struct {
	logger          *slog.Logger
	aiClient        generativeAI.Client
	repo            Repository
	interactionRepo llmInteraction.Repository
	weather         WeatherProvider
	genConfig       *genai.GenerateContentConfig
}

func NewServiceImpl(aiClient generativeAI.Client, repo Repository, interactionRepo llmInteraction.Repository,
	weather WeatherProvider, genConfig *genai.GenerateContentConfig, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:          logger,
		aiClient:        aiClient,
		repo:            repo,
		interactionRepo: interactionRepo,
		weather:         weather,
		genConfig:       genConfig,
	}
}

// GenerateItinerary validates the request, builds the prompt, calls the
// model once, parses the raw text and persists the result. One blocking
// model call per user action, no retries.
func (s *ServiceImpl) GenerateItinerary(ctx context.Context, req types.TripRequest) (*types.ItineraryResponse, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "GenerateItinerary")
	defer span.End()
	span.SetAttributes(attribute.String("trip.destination", req.Destination))

	if err := ValidateTripRequest(req); err != nil {
		span.SetStatus(codes.Error, "Invalid trip request")
		return nil, err
	}

	weatherSummary := ""
	if s.weather != nil {
		summary, err := s.weather.Summary(ctx, req.Destination)
		if err != nil {
			s.logger.WarnContext(ctx, "weather lookup failed, continuing without forecast",
				slog.String("destination", req.Destination), slog.Any("error", err))
		} else {
			weatherSummary = summary
		}
	}

	prompt := buildItineraryPrompt(req, weatherSummary)

	startTime := time.Now()
	raw, err := s.aiClient.GenerateContent(ctx, prompt, s.genConfig)
	latency := time.Since(startTime)
	if m := metrics.Get(); m != nil {
		m.GenerationRequestsTotal.Add(ctx, 1)
		m.GenerationDurationSeconds.Record(ctx, latency.Seconds())
	}
	if err != nil {
		span.RecordError(err)
		if m := metrics.Get(); m != nil {
			m.GenerationErrorsTotal.Add(ctx, 1)
		}
		return nil, fmt.Errorf("failed to generate itinerary: %w", err)
	}

	interaction := types.LlmInteraction{
		Prompt:       prompt,
		ResponseText: raw,
		ModelUsed:    s.aiClient.Model(),
		LatencyMs:    int(latency.Milliseconds()),
		Destination:  req.Destination,
	}
	if _, err := s.interactionRepo.SaveInteraction(ctx, interaction); err != nil {
		// Audit record only; the generated result is still good.
		s.logger.ErrorContext(ctx, "failed to save LLM interaction", slog.Any("error", err))
	}

	parsed := ParseItinerary(req.Destination, raw)
	parsed.ModelUsed = s.aiClient.Model()
	parsed.CreatedAt = time.Now()
	for _, w := range parsed.Warnings {
		s.logger.WarnContext(ctx, "itinerary parse warning",
			slog.String("destination", req.Destination), slog.String("warning", w))
	}
	if m := metrics.Get(); m != nil && len(parsed.Warnings) > 0 {
		m.ParseWarningsTotal.Add(ctx, int64(len(parsed.Warnings)))
	}

	id, err := s.repo.SaveItinerary(ctx, req, parsed)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to save itinerary: %w", err)
	}
	parsed.ID = id

	span.SetStatus(codes.Ok, "Itinerary generated")
	return &parsed, nil
}

func (s *ServiceImpl) GetItinerary(ctx context.Context, id uuid.UUID) (*types.SavedItinerary, error) {
	saved, err := s.repo.GetItinerary(ctx, id)
	if err != nil {
		s.logger.Error("failed to get itinerary", "error", err)
		return nil, err
	}
	return saved, nil
}

func (s *ServiceImpl) ListItineraries(ctx context.Context, limit, offset int) ([]types.SavedItinerary, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	saved, err := s.repo.ListItineraries(ctx, limit, offset)
	if err != nil {
		s.logger.Error("failed to list itineraries", "error", err)
		return nil, err
	}
	return saved, nil
}
