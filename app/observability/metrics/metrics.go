package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	GenerationRequestsTotal   metric.Int64Counter
	GenerationDurationSeconds metric.Float64Histogram
	GenerationErrorsTotal     metric.Int64Counter
	ParseWarningsTotal        metric.Int64Counter
	SentimentRequestsTotal    metric.Int64Counter
	GeocodeCacheHitsTotal     metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metric instruments only once,
// using the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("TravelCompanion")
		var err error
		m := &AppMetrics{}

		m.GenerationRequestsTotal, err = meter.Int64Counter(
			"generation_requests_total",
			metric.WithDescription("Total number of itinerary/tips generation requests completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create generation_requests_total: %v", err)
		}

		m.GenerationDurationSeconds, err = meter.Float64Histogram(
			"generation_duration_seconds",
			metric.WithDescription("Duration of generative model calls in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create generation_duration_seconds: %v", err)
		}

		m.GenerationErrorsTotal, err = meter.Int64Counter(
			"generation_errors_total",
			metric.WithDescription("Total number of failed generative model calls"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create generation_errors_total: %v", err)
		}

		m.ParseWarningsTotal, err = meter.Int64Counter(
			"parse_warnings_total",
			metric.WithDescription("Total number of response sections dropped by the parser"),
			metric.WithUnit("{warning}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create parse_warnings_total: %v", err)
		}

		m.SentimentRequestsTotal, err = meter.Int64Counter(
			"sentiment_requests_total",
			metric.WithDescription("Total number of per-review sentiment classifications"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create sentiment_requests_total: %v", err)
		}

		m.GeocodeCacheHitsTotal, err = meter.Int64Counter(
			"geocode_cache_hits_total",
			metric.WithDescription("Geocode lookups served from the in-memory cache"),
			metric.WithUnit("{hit}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create geocode_cache_hits_total: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the initialized metric set. InitAppMetrics must have run.
func Get() *AppMetrics {
	return appMetrics
}
