package tips

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"travel-companion/internal/api"
	"travel-companion/internal/types"
)

type Handler struct {
	tipsService Service
	logger      *slog.Logger
}

func NewHandler(tipsService Service, logger *slog.Logger) *Handler {
	return &Handler{
		tipsService: tipsService,
		logger:      logger,
	}
}

// GetTravelTips godoc
// @Summary      Get Travel Tips
// @Description  Generates cultural, safety, and practical tips for a destination.
// @Tags         Tips
// @Produce      json
// @Param        destination query string true "Destination"
// @Success      200 {object} map[string]string "Travel Tips"
// @Failure      400 {object} map[string]interface{} "Missing Destination"
// @Failure      502 {object} map[string]interface{} "Generation Failed"
// @Router       /tips [get]
func (h *Handler) GetTravelTips(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TipsHandler").Start(r.Context(), "GetTravelTips", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/tips"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetTravelTips"))
	destination := r.URL.Query().Get("destination")

	tips, err := h.tipsService.GetTravelTips(ctx, destination)
	if err != nil {
		h.writeError(ctx, w, r, l, "Failed to get travel tips", err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]string{
		"destination": destination,
		"tips":        tips,
	})
}

// GetRestaurantRecommendations godoc
// @Summary      Restaurant Recommendations
// @Description  Recommends restaurants for a destination, optionally filtered by cuisine preferences.
// @Tags         Tips
// @Produce      json
// @Param        destination query string true  "Destination"
// @Param        cuisines    query string false "Comma-separated cuisine preferences"
// @Success      200 {object} map[string]string "Restaurant Recommendations"
// @Failure      400 {object} map[string]interface{} "Missing Destination"
// @Failure      502 {object} map[string]interface{} "Generation Failed"
// @Router       /tips/restaurants [get]
func (h *Handler) GetRestaurantRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TipsHandler").Start(r.Context(), "GetRestaurantRecommendations", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/tips/restaurants"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetRestaurantRecommendations"))
	destination := r.URL.Query().Get("destination")
	cuisines := splitCSV(r.URL.Query().Get("cuisines"))

	recommendations, err := h.tipsService.GetRestaurantRecommendations(ctx, destination, cuisines)
	if err != nil {
		h.writeError(ctx, w, r, l, "Failed to get restaurant recommendations", err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]string{
		"destination":     destination,
		"recommendations": recommendations,
	})
}

// GetAttractionRecommendations godoc
// @Summary      Attraction Recommendations
// @Description  Recommends attractions for a destination matched to the given interests.
// @Tags         Tips
// @Produce      json
// @Param        destination query string true "Destination"
// @Param        interests   query string true "Comma-separated interests"
// @Success      200 {object} map[string]string "Attraction Recommendations"
// @Failure      400 {object} map[string]interface{} "Missing Destination or Interests"
// @Failure      502 {object} map[string]interface{} "Generation Failed"
// @Router       /tips/attractions [get]
func (h *Handler) GetAttractionRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TipsHandler").Start(r.Context(), "GetAttractionRecommendations", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/tips/attractions"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetAttractionRecommendations"))
	destination := r.URL.Query().Get("destination")
	interests := splitCSV(r.URL.Query().Get("interests"))

	recommendations, err := h.tipsService.GetAttractionRecommendations(ctx, destination, interests)
	if err != nil {
		h.writeError(ctx, w, r, l, "Failed to get attraction recommendations", err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]string{
		"destination":     destination,
		"recommendations": recommendations,
	})
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, r *http.Request, l *slog.Logger, msg string, err error) {
	l.ErrorContext(ctx, msg, slog.Any("error", err))
	switch {
	case errors.Is(err, types.ErrValidation):
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, types.ErrGenerationFailed):
		api.ErrorResponse(w, r, http.StatusBadGateway, "Generation failed, please try again")
	default:
		api.ErrorResponse(w, r, http.StatusInternalServerError, msg)
	}
}

func splitCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
