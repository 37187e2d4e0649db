package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"google.golang.org/genai"

	database "travel-companion/app/db"
	_ "travel-companion/docs"
	appLogger "travel-companion/app/logger"
	"travel-companion/app/observability/metrics"
	"travel-companion/app/tracer"
	"travel-companion/config"
	generativeAI "travel-companion/internal/api/generative_ai"
	"travel-companion/internal/api/geocode"
	"travel-companion/internal/api/itinerary"
	llmInteraction "travel-companion/internal/api/llm_interaction"
	"travel-companion/internal/api/review"
	"travel-companion/internal/api/tips"
	"travel-companion/internal/api/weather"
	apiRouter "travel-companion/internal/router"
)

// @title           AI Travel Companion API
// @version         1.0
// @description     Gemini-backed itinerary generation, review sentiment analytics, travel tips, map points, and weather.
// @BasePath        /api/v1
func main() {
	// Use standard log until slog is configured, in case godotenv fails
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	logger := setupLogger()
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// --- Observability ---
	tracer.InitTracingAndMetrics(cfg.Handlers.Prometheus.Port)
	metrics.InitAppMetrics()

	// --- Database Setup ---
	dbConfig, err := database.NewDatabaseConfig(&cfg, logger)
	if err != nil {
		logger.Error("Failed to generate database config", slog.Any("error", err))
		os.Exit(1)
	}

	err = database.RunMigrations(dbConfig.ConnectionURL, logger)
	if err != nil {
		logger.Error("Failed to run database migrations", slog.Any("error", err))
		os.Exit(1)
	}

	pool, err := database.Init(dbConfig.ConnectionURL, logger)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if !database.WaitForDB(ctx, pool, logger) {
		logger.Error("Database not ready after waiting, exiting.")
		os.Exit(1)
	}

	// --- AI Client ---
	aiClient, err := generativeAI.NewAIClient(ctx, cfg.Gemini.Model)
	if err != nil {
		logger.Error("Failed to initialize generative AI client", slog.Any("error", err))
		os.Exit(1)
	}
	genConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(cfg.Gemini.Temperature),
		MaxOutputTokens: cfg.Gemini.MaxTokens,
	}

	// --- Dependency Injection ---
	interactionRepo := llmInteraction.NewPostgresLlmInteractionRepo(pool, logger)

	weatherService := weather.NewServiceImpl(cfg.Weather.BaseURL, cfg.Weather.ForecastDays, logger)
	weatherHandler := weather.NewHandler(weatherService, logger)

	geocodeService := geocode.NewServiceImpl(cfg.Geocode.BaseURL, cfg.Geocode.UserAgent, cfg.Geocode.CacheTTL, logger)

	itineraryRepo := itinerary.NewPostgresItineraryRepo(pool, logger)
	itineraryService := itinerary.NewServiceImpl(aiClient, itineraryRepo, interactionRepo, weatherService, genConfig, logger)
	itineraryHandler := itinerary.NewHandler(itineraryService, geocodeService, logger)

	reviewRepo := review.NewPostgresReviewRepo(pool, logger)
	reviewService := review.NewServiceImpl(aiClient, reviewRepo, interactionRepo, genConfig, logger)
	reviewHandler := review.NewHandler(reviewService, logger)

	tipsService := tips.NewServiceImpl(aiClient, interactionRepo, genConfig, logger)
	tipsHandler := tips.NewHandler(tipsService, logger)

	// --- Router Setup ---
	mainRouter := apiRouter.SetupRouter(&apiRouter.Config{
		ItineraryHandler: itineraryHandler,
		ReviewHandler:    reviewHandler,
		TipsHandler:      tipsHandler,
		WeatherHandler:   weatherHandler,
	})

	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(appLogger.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(middleware.Timeout(cfg.Server.Timeout))
	router.Use(middleware.Compress(5, "application/json"))
	router.Mount("/", mainRouter)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		slog.InfoContext(r.Context(), "Root endpoint hit")
		w.Write([]byte("Welcome to AI Travel Companion API"))
	})

	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// --- HTTP Server Setup ---
	serverAddress := fmt.Sprintf(":%s", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         serverAddress,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 2 * time.Minute, // generation calls are slow
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	go func() {
		logger.Info("Starting HTTP server", slog.String("address", serverAddress))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server ListenAndServe error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()

	logger.Info("Shutdown signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server graceful shutdown failed", slog.Any("error", err))
	} else {
		logger.Info("HTTP server gracefully stopped")
	}

	logger.Info("Application shut down complete.")
}

// setupLogger configures and returns the application logger.
func setupLogger() *slog.Logger {
	var logger *slog.Logger
	env := os.Getenv("APP_ENV")

	if env == "development" || env == "" { // Default to development if not set
		// Colored logs for development
		tintOpts := &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}
		logger = slog.New(tint.NewHandler(os.Stdout, tintOpts))
		log.Println("Initialized development logger (tint)")
	} else {
		// JSON logs for production or other environments
		jsonOpts := &slog.HandlerOptions{
			Level:     slog.LevelInfo,
			AddSource: false,
		}
		logger = slog.New(slog.NewJSONHandler(os.Stdout, jsonOpts))
		log.Println("Initialized production logger (JSON)")
	}
	return logger
}
