package weather

import (
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"travel-companion/internal/api"
)

type Handler struct {
	weatherService Service
	logger         *slog.Logger
}

func NewHandler(weatherService Service, logger *slog.Logger) *Handler {
	return &Handler{
		weatherService: weatherService,
		logger:         logger,
	}
}

// GetForecast godoc
// @Summary      Get Weather Forecast
// @Description  Returns the aggregated daily forecast for a destination.
// @Tags         Weather
// @Produce      json
// @Param        destination query string true "Destination"
// @Success      200 {object} types.WeatherForecast "Daily Forecast"
// @Failure      400 {object} map[string]interface{} "Missing Destination"
// @Failure      502 {object} map[string]interface{} "Weather Service Unavailable"
// @Failure      503 {object} map[string]interface{} "Weather Service Not Configured"
// @Router       /weather [get]
func (h *Handler) GetForecast(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("WeatherHandler").Start(r.Context(), "GetForecast", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/weather"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetForecast"))

	destination := r.URL.Query().Get("destination")
	if strings.TrimSpace(destination) == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "destination query parameter is required")
		return
	}

	forecast, err := h.weatherService.Forecast(ctx, destination)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch forecast", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadGateway, "Weather service unavailable")
		return
	}
	if forecast == nil {
		// No API key configured; the feature is off, not broken.
		api.ErrorResponse(w, r, http.StatusServiceUnavailable, "Weather service is not configured")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, forecast)
}
