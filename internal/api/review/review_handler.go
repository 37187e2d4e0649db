package review

import (
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"travel-companion/internal/api"
	"travel-companion/internal/types"
)

type Handler struct {
	reviewService Service
	logger        *slog.Logger
}

func NewHandler(reviewService Service, logger *slog.Logger) *Handler {
	return &Handler{
		reviewService: reviewService,
		logger:        logger,
	}
}

type analyzeReviewsRequest struct {
	ReviewsText string `json:"reviews_text"`
}

// AnalyzeReviews godoc
// @Summary      Analyze Reviews
// @Description  Splits a pasted review blob, classifies each review's sentiment, and extracts insights.
// @Tags         Reviews
// @Accept       json
// @Produce      json
// @Param        request body analyzeReviewsRequest true "Raw reviews text"
// @Success      200 {object} types.ReviewAnalysis "Review Analysis"
// @Failure      400 {object} map[string]interface{} "No Reviews in Input"
// @Failure      502 {object} map[string]interface{} "Generation Failed"
// @Router       /reviews/analyze [post]
func (h *Handler) AnalyzeReviews(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ReviewHandler").Start(r.Context(), "AnalyzeReviews", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/reviews/analyze"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "AnalyzeReviews"))
	l.DebugContext(ctx, "Analyze reviews handler invoked")

	var req analyzeReviewsRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	analysis, err := h.reviewService.AnalyzeReviews(ctx, req.ReviewsText)
	if err != nil {
		l.ErrorContext(ctx, "Failed to analyze reviews", slog.Any("error", err))
		switch {
		case errors.Is(err, types.ErrValidation):
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		case errors.Is(err, types.ErrGenerationFailed):
			api.ErrorResponse(w, r, http.StatusBadGateway, "Generation failed, please try again")
		default:
			api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to analyze reviews")
		}
		return
	}

	l.InfoContext(ctx, "Reviews analyzed successfully", slog.Int("total", analysis.TotalReviews))
	api.WriteJSONResponse(w, r, http.StatusOK, analysis)
}
