package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"travel-companion/internal/api/itinerary"
	"travel-companion/internal/api/review"
	"travel-companion/internal/api/tips"
	"travel-companion/internal/api/weather"
)

// Config contains the handlers the router wires up.
type Config struct {
	ItineraryHandler *itinerary.Handler
	ReviewHandler    *review.Handler
	TipsHandler      *tips.Handler
	WeatherHandler   *weather.Handler
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) are applied
// before mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/itineraries", func(r chi.Router) {
			r.Post("/", cfg.ItineraryHandler.GenerateItinerary)
			r.Get("/", cfg.ItineraryHandler.ListItineraries)
			r.Get("/{id}", cfg.ItineraryHandler.GetItinerary)
			r.Get("/{id}/export", cfg.ItineraryHandler.ExportItinerary)
			r.Get("/{id}/map", cfg.ItineraryHandler.MapPoints)
		})

		r.Post("/reviews/analyze", cfg.ReviewHandler.AnalyzeReviews)

		r.Route("/tips", func(r chi.Router) {
			r.Get("/", cfg.TipsHandler.GetTravelTips)
			r.Get("/restaurants", cfg.TipsHandler.GetRestaurantRecommendations)
			r.Get("/attractions", cfg.TipsHandler.GetAttractionRecommendations)
		})

		r.Get("/weather", cfg.WeatherHandler.GetForecast)
	})

	return r
}
