package itinerary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"travel-companion/internal/api"
	"travel-companion/internal/api/export"
	"travel-companion/internal/api/geocode"
	"travel-companion/internal/types"
)

type Handler struct {
	itineraryService Service
	geocodeService   geocode.Service
	logger           *slog.Logger
}

func NewHandler(itineraryService Service, geocodeService geocode.Service, logger *slog.Logger) *Handler {
	return &Handler{
		itineraryService: itineraryService,
		geocodeService:   geocodeService,
		logger:           logger,
	}
}

// generateItineraryRequest is the JSON form of a TripRequest; dates
// arrive as YYYY-MM-DD strings.
type generateItineraryRequest struct {
	Destination  string   `json:"destination"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Budget       string   `json:"budget"`
	TravelerType string   `json:"traveler_type"`
	Interests    []string `json:"interests"`
}

func (req generateItineraryRequest) toTripRequest() (types.TripRequest, error) {
	trip := types.TripRequest{
		Destination:  req.Destination,
		Budget:       types.BudgetTier(req.Budget),
		TravelerType: types.TravelerType(req.TravelerType),
		Interests:    req.Interests,
	}
	if req.StartDate != "" {
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return trip, fmt.Errorf("invalid start_date %q, expected YYYY-MM-DD", req.StartDate)
		}
		trip.StartDate = start
	}
	if req.EndDate != "" {
		end, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return trip, fmt.Errorf("invalid end_date %q, expected YYYY-MM-DD", req.EndDate)
		}
		trip.EndDate = end
	}
	return trip, nil
}

// GenerateItinerary godoc
// @Summary      Generate Itinerary
// @Description  Generates a day-by-day travel itinerary from the trip form and persists it.
// @Tags         Itinerary
// @Accept       json
// @Produce      json
// @Param        request body generateItineraryRequest true "Trip details"
// @Success      201 {object} types.ItineraryResponse "Generated Itinerary"
// @Failure      400 {object} map[string]interface{} "Invalid Request"
// @Failure      502 {object} map[string]interface{} "Generation Failed"
// @Router       /itineraries [post]
func (h *Handler) GenerateItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "GenerateItinerary", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/itineraries"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GenerateItinerary"))
	l.DebugContext(ctx, "Generate itinerary handler invoked")

	var req generateItineraryRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	trip, err := req.toTripRequest()
	if err != nil {
		l.ErrorContext(ctx, "Invalid trip request", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	itin, err := h.itineraryService.GenerateItinerary(ctx, trip)
	if err != nil {
		h.writeServiceError(ctx, w, r, l, "Failed to generate itinerary", err)
		return
	}

	l.InfoContext(ctx, "Itinerary generated successfully",
		slog.String("destination", trip.Destination), slog.Int("days", len(itin.Days)))
	api.WriteJSONResponse(w, r, http.StatusCreated, itin)
}

// ListItineraries godoc
// @Summary      List Itineraries
// @Description  Lists saved itineraries, newest first.
// @Tags         Itinerary
// @Produce      json
// @Param        limit  query int false "Page size (default 20, max 100)"
// @Param        offset query int false "Page offset"
// @Success      200 {array} types.SavedItinerary "Saved Itineraries"
// @Failure      500 {object} map[string]interface{} "Internal Server Error"
// @Router       /itineraries [get]
func (h *Handler) ListItineraries(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "ListItineraries", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/itineraries"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "ListItineraries"))

	limit := api.QueryInt(r, "limit", 20)
	offset := api.QueryInt(r, "offset", 0)

	saved, err := h.itineraryService.ListItineraries(ctx, limit, offset)
	if err != nil {
		h.writeServiceError(ctx, w, r, l, "Failed to list itineraries", err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, saved)
}

// GetItinerary godoc
// @Summary      Get Itinerary
// @Description  Fetches one saved itinerary by ID.
// @Tags         Itinerary
// @Produce      json
// @Param        id path string true "Itinerary ID"
// @Success      200 {object} types.SavedItinerary "Saved Itinerary"
// @Failure      400 {object} map[string]interface{} "Invalid ID"
// @Failure      404 {object} map[string]interface{} "Itinerary Not Found"
// @Router       /itineraries/{id} [get]
func (h *Handler) GetItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "GetItinerary", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/itineraries/{id}"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetItinerary"))

	saved, ok := h.fetchItinerary(ctx, w, r, l)
	if !ok {
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, saved)
}

// ExportItinerary godoc
// @Summary      Export Itinerary
// @Description  Downloads a saved itinerary as Markdown or PDF.
// @Tags         Itinerary
// @Produce      text/markdown
// @Produce      application/pdf
// @Param        id     path  string true  "Itinerary ID"
// @Param        format query string false "Export format (markdown, md, pdf)"
// @Success      200 {file} file "Rendered Itinerary"
// @Failure      400 {object} map[string]interface{} "Invalid Format or ID"
// @Failure      404 {object} map[string]interface{} "Itinerary Not Found"
// @Router       /itineraries/{id}/export [get]
func (h *Handler) ExportItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "ExportItinerary", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/itineraries/{id}/export"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "ExportItinerary"))

	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	saved, ok := h.fetchItinerary(ctx, w, r, l)
	if !ok {
		return
	}

	payload, err := export.Render(saved.Itinerary, format)
	if err != nil {
		l.ErrorContext(ctx, "Failed to render export", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to render export")
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.Filename(saved.Request.Destination)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(payload); err != nil {
		l.ErrorContext(ctx, "Failed to write export body", slog.Any("error", err))
	}
}

// MapPoints godoc
// @Summary      Itinerary Map Points
// @Description  Geocodes the destination and the locations mentioned in a saved itinerary.
// @Tags         Itinerary
// @Produce      json
// @Param        id path string true "Itinerary ID"
// @Success      200 {object} map[string]interface{} "Destination and Map Points"
// @Failure      400 {object} map[string]interface{} "Invalid ID"
// @Failure      404 {object} map[string]interface{} "Itinerary Not Found"
// @Router       /itineraries/{id}/map [get]
func (h *Handler) MapPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "MapPoints", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/itineraries/{id}/map"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "MapPoints"))

	saved, ok := h.fetchItinerary(ctx, w, r, l)
	if !ok {
		return
	}

	points := h.geocodeService.MapPoints(ctx, saved.Request.Destination, saved.Itinerary.RawText)
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"destination": saved.Request.Destination,
		"points":      points,
	})
}

func (h *Handler) fetchItinerary(ctx context.Context, w http.ResponseWriter, r *http.Request, l *slog.Logger) (*types.SavedItinerary, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.ErrorContext(ctx, "Invalid itinerary ID format", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid itinerary ID format")
		return nil, false
	}

	saved, err := h.itineraryService.GetItinerary(ctx, id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Itinerary not found")
			return nil, false
		}
		l.ErrorContext(ctx, "Failed to fetch itinerary", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch itinerary")
		return nil, false
	}
	return saved, true
}

func (h *Handler) writeServiceError(ctx context.Context, w http.ResponseWriter, r *http.Request, l *slog.Logger, msg string, err error) {
	l.ErrorContext(ctx, msg, slog.Any("error", err))
	switch {
	case errors.Is(err, types.ErrValidation):
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, types.ErrGenerationFailed):
		api.ErrorResponse(w, r, http.StatusBadGateway, "Generation failed, please try again")
	case errors.Is(err, types.ErrNotFound):
		api.ErrorResponse(w, r, http.StatusNotFound, err.Error())
	default:
		api.ErrorResponse(w, r, http.StatusInternalServerError, fmt.Sprintf("%s: %s", msg, err.Error()))
	}
}
