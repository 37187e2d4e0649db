package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "travel-companion/docs"
	"travel-companion/internal/api/itinerary"
	"travel-companion/internal/api/review"
	"travel-companion/internal/api/tips"
	"travel-companion/internal/api/weather"
	"travel-companion/internal/router"
	"travel-companion/internal/types"
)

// E2ETestSuite exercises the full HTTP surface against stub services,
// so routing, decoding, and error mapping are covered end to end.
type E2ETestSuite struct {
	suite.Suite
	server  *httptest.Server
	client  *http.Client
	savedID uuid.UUID
}

func (s *E2ETestSuite) SetupSuite() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	s.savedID = uuid.New()

	saved := &types.SavedItinerary{
		ID: s.savedID,
		Request: types.TripRequest{
			Destination:  "Kyoto, Japan",
			StartDate:    time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			EndDate:      time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC),
			Budget:       types.BudgetTierMidRange,
			TravelerType: types.TravelerCouple,
			Interests:    []string{"food", "history"},
		},
		Itinerary: types.ItineraryResponse{
			ID:          uuid.Nil,
			Destination: "Kyoto, Japan",
			Days: []types.DayPlan{
				{Day: 1, Title: "Temples", Activities: []types.Activity{
					{TimeOfDay: types.TimeOfDayMorning, Description: "Fushimi Inari at sunrise"},
				}},
			},
			RawText:   "Day 1: Temples\n- Morning: Visit Fushimi Inari at sunrise",
			ModelUsed: "gemini-2.0-flash",
		},
		CreatedAt: time.Now(),
	}

	routes := router.SetupRouter(&router.Config{
		ItineraryHandler: itinerary.NewHandler(&stubItineraryService{saved: saved}, &stubGeocodeService{}, logger),
		ReviewHandler:    review.NewHandler(&stubReviewService{}, logger),
		TipsHandler:      tips.NewHandler(&stubTipsService{}, logger),
		WeatherHandler:   weather.NewHandler(&stubWeatherService{}, logger),
	})

	mux := chi.NewMux()
	mux.Mount("/", routes)
	mux.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.server = httptest.NewServer(mux)
	s.client = &http.Client{Timeout: 10 * time.Second}
}

func (s *E2ETestSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *E2ETestSuite) postJSON(path string, body any) *http.Response {
	payload, err := json.Marshal(body)
	s.Require().NoError(err)
	resp, err := s.client.Post(s.server.URL+path, "application/json", bytes.NewReader(payload))
	s.Require().NoError(err)
	return resp
}

func (s *E2ETestSuite) get(path string) *http.Response {
	resp, err := s.client.Get(s.server.URL + path)
	s.Require().NoError(err)
	return resp
}

func (s *E2ETestSuite) TestPing() {
	resp := s.get("/ping")
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *E2ETestSuite) TestSwaggerDoc() {
	resp := s.get("/swagger/doc.json")
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	var doc struct {
		BasePath string                 `json:"basePath"`
		Paths    map[string]interface{} `json:"paths"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&doc))
	s.Equal("/api/v1", doc.BasePath)
	s.Contains(doc.Paths, "/itineraries")
	s.Contains(doc.Paths, "/reviews/analyze")
	s.Contains(doc.Paths, "/weather")
}

func (s *E2ETestSuite) TestGenerateItinerary() {
	resp := s.postJSON("/api/v1/itineraries", map[string]any{
		"destination":   "Kyoto, Japan",
		"start_date":    "2026-04-01",
		"end_date":      "2026-04-03",
		"budget":        "mid-range",
		"traveler_type": "couple",
		"interests":     []string{"food", "history"},
	})
	defer resp.Body.Close()

	s.Equal(http.StatusCreated, resp.StatusCode)

	var itin types.ItineraryResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&itin))
	s.Equal("Kyoto, Japan", itin.Destination)
	s.NotEmpty(itin.Days)
}

func (s *E2ETestSuite) TestGenerateItinerary_MissingDestination() {
	resp := s.postJSON("/api/v1/itineraries", map[string]any{
		"start_date": "2026-04-01",
		"end_date":   "2026-04-03",
	})
	defer resp.Body.Close()
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *E2ETestSuite) TestGenerateItinerary_BadDate() {
	resp := s.postJSON("/api/v1/itineraries", map[string]any{
		"destination": "Kyoto, Japan",
		"start_date":  "04/01/2026",
	})
	defer resp.Body.Close()
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *E2ETestSuite) TestGetItinerary() {
	resp := s.get("/api/v1/itineraries/" + s.savedID.String())
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var saved types.SavedItinerary
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&saved))
	s.Equal(s.savedID, saved.ID)
}

func (s *E2ETestSuite) TestGetItinerary_NotFound() {
	resp := s.get("/api/v1/itineraries/" + uuid.NewString())
	defer resp.Body.Close()
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *E2ETestSuite) TestGetItinerary_BadID() {
	resp := s.get("/api/v1/itineraries/not-a-uuid")
	defer resp.Body.Close()
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *E2ETestSuite) TestExportItinerary_Markdown() {
	resp := s.get(fmt.Sprintf("/api/v1/itineraries/%s/export?format=markdown", s.savedID))
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("text/markdown", resp.Header.Get("Content-Type"))
	s.Contains(resp.Header.Get("Content-Disposition"), "Kyoto,_Japan_itinerary.md")
}

func (s *E2ETestSuite) TestExportItinerary_PDF() {
	resp := s.get(fmt.Sprintf("/api/v1/itineraries/%s/export?format=pdf", s.savedID))
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("application/pdf", resp.Header.Get("Content-Type"))
}

func (s *E2ETestSuite) TestExportItinerary_BadFormat() {
	resp := s.get(fmt.Sprintf("/api/v1/itineraries/%s/export?format=docx", s.savedID))
	defer resp.Body.Close()
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *E2ETestSuite) TestMapPoints() {
	resp := s.get(fmt.Sprintf("/api/v1/itineraries/%s/map", s.savedID))
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var body struct {
		Destination string           `json:"destination"`
		Points      []types.MapPoint `json:"points"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal("Kyoto, Japan", body.Destination)
	s.NotEmpty(body.Points)
}

func (s *E2ETestSuite) TestAnalyzeReviews() {
	resp := s.postJSON("/api/v1/reviews/analyze", map[string]string{
		"reviews_text": "Loved the temples and the food scene.\n\nHotel was noisy at night.",
	})
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var analysis types.ReviewAnalysis
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&analysis))
	s.Equal(2, analysis.TotalReviews)
}

func (s *E2ETestSuite) TestAnalyzeReviews_Empty() {
	resp := s.postJSON("/api/v1/reviews/analyze", map[string]string{"reviews_text": "  "})
	defer resp.Body.Close()
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *E2ETestSuite) TestTravelTips() {
	resp := s.get("/api/v1/tips?destination=Lisbon")
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var body map[string]string
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.NotEmpty(body["tips"])
}

func (s *E2ETestSuite) TestTravelTips_MissingDestination() {
	resp := s.get("/api/v1/tips")
	defer resp.Body.Close()
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *E2ETestSuite) TestWeather_NotConfigured() {
	resp := s.get("/api/v1/weather?destination=Kyoto")
	defer resp.Body.Close()
	s.Equal(http.StatusServiceUnavailable, resp.StatusCode)
}

func (s *E2ETestSuite) TestWeather_MissingDestination() {
	resp := s.get("/api/v1/weather")
	defer resp.Body.Close()
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func TestE2ETestSuite(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}

// ---------------------------------------------------------------------------
// stub services
// ---------------------------------------------------------------------------

type stubItineraryService struct {
	saved *types.SavedItinerary
}

func (s *stubItineraryService) GenerateItinerary(ctx context.Context, req types.TripRequest) (*types.ItineraryResponse, error) {
	if strings.TrimSpace(req.Destination) == "" {
		return nil, fmt.Errorf("%w: destination is required", types.ErrValidation)
	}
	itin := s.saved.Itinerary
	itin.ID = s.saved.ID
	return &itin, nil
}

func (s *stubItineraryService) GetItinerary(ctx context.Context, id uuid.UUID) (*types.SavedItinerary, error) {
	if id != s.saved.ID {
		return nil, fmt.Errorf("%w: itinerary %s", types.ErrNotFound, id)
	}
	return s.saved, nil
}

func (s *stubItineraryService) ListItineraries(ctx context.Context, limit, offset int) ([]types.SavedItinerary, error) {
	return []types.SavedItinerary{*s.saved}, nil
}

type stubGeocodeService struct{}

func (s *stubGeocodeService) Geocode(ctx context.Context, location string) (float64, float64, error) {
	return 35.0116, 135.7681, nil
}

func (s *stubGeocodeService) MapPoints(ctx context.Context, destination, itineraryText string) []types.MapPoint {
	return []types.MapPoint{{Latitude: 35.0116, Longitude: 135.7681, Label: destination}}
}

type stubReviewService struct{}

func (s *stubReviewService) AnalyzeReviews(ctx context.Context, reviewsText string) (*types.ReviewAnalysis, error) {
	reviews := review.SplitReviews(reviewsText)
	if len(reviews) == 0 {
		return nil, fmt.Errorf("%w: no reviews found in input", types.ErrValidation)
	}
	analysis := &types.ReviewAnalysis{TotalReviews: len(reviews), CreatedAt: time.Now()}
	for _, text := range reviews {
		analysis.Records = append(analysis.Records, types.ReviewRecord{
			Text: text, Sentiment: types.SentimentNeutral, Confidence: 0.9,
		})
		analysis.Distribution.Neutral++
	}
	return analysis, nil
}

type stubTipsService struct{}

func (s *stubTipsService) GetTravelTips(ctx context.Context, destination string) (string, error) {
	if strings.TrimSpace(destination) == "" {
		return "", fmt.Errorf("%w: destination is required", types.ErrValidation)
	}
	return "Carry cash for trams.", nil
}

func (s *stubTipsService) GetRestaurantRecommendations(ctx context.Context, destination string, cuisinePreferences []string) (string, error) {
	return "1. Tasca do Chico", nil
}

func (s *stubTipsService) GetAttractionRecommendations(ctx context.Context, destination string, interests []string) (string, error) {
	return "Castelo de Sao Jorge", nil
}

type stubWeatherService struct{}

func (s *stubWeatherService) Forecast(ctx context.Context, destination string) (*types.WeatherForecast, error) {
	return nil, nil
}

func (s *stubWeatherService) Summary(ctx context.Context, destination string) (string, error) {
	return "", nil
}
