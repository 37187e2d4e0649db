package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"travel-companion/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service wraps the OpenWeather forecast API. The whole feature is
// optional: without an OPENWEATHER_API_KEY both methods return empty
// results and no error.
type Service interface {
	Forecast(ctx context.Context, destination string) (*types.WeatherForecast, error)
	Summary(ctx context.Context, destination string) (string, error)
}

type ServiceImpl struct {
	logger       *slog.Logger
	httpClient   *http.Client
	baseURL      string
	forecastDays int
	apiKey       string
}

func NewServiceImpl(baseURL string, forecastDays int, logger *slog.Logger) *ServiceImpl {
	if forecastDays <= 0 {
		forecastDays = 5
	}
	return &ServiceImpl{
		logger:       logger,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		baseURL:      strings.TrimRight(baseURL, "/"),
		forecastDays: forecastDays,
		apiKey:       os.Getenv("OPENWEATHER_API_KEY"),
	}
}

// Enabled reports whether an API key was configured.
func (s *ServiceImpl) Enabled() bool {
	return s.apiKey != ""
}

type forecastEntry struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Forecast geocodes the destination through OpenWeather's geo endpoint
// and aggregates the 3-hourly forecast into daily figures.
func (s *ServiceImpl) Forecast(ctx context.Context, destination string) (*types.WeatherForecast, error) {
	ctx, span := otel.Tracer("WeatherService").Start(ctx, "Forecast")
	defer span.End()
	span.SetAttributes(attribute.String("weather.destination", destination))

	if !s.Enabled() {
		return nil, nil
	}

	lat, lon, err := s.geocode(ctx, destination)
	if err != nil {
		return nil, fmt.Errorf("failed to locate %q for forecast: %w", destination, err)
	}

	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", lat))
	params.Set("lon", fmt.Sprintf("%f", lon))
	params.Set("appid", s.apiKey)
	params.Set("units", "metric")
	params.Set("cnt", fmt.Sprintf("%d", s.forecastDays*8)) // 8 slots per day

	var payload struct {
		List []forecastEntry `json:"list"`
		City struct {
			Name string `json:"name"`
		} `json:"city"`
	}
	if err := s.getJSON(ctx, s.baseURL+"/data/2.5/forecast?"+params.Encode(), &payload); err != nil {
		return nil, fmt.Errorf("forecast request failed: %w", err)
	}

	return aggregateForecast(payload.City.Name, payload.List), nil
}

// Summary renders the first days of a forecast as prompt-ready text.
// Mirrors Forecast's optional behaviour.
func (s *ServiceImpl) Summary(ctx context.Context, destination string) (string, error) {
	forecast, err := s.Forecast(ctx, destination)
	if err != nil {
		return "", err
	}
	if forecast == nil || len(forecast.Forecasts) == 0 {
		return "", nil
	}

	days := forecast.Forecasts
	if len(days) > 3 {
		days = days[:3]
	}
	var parts []string
	for _, day := range days {
		name := day.Date
		if t, err := time.Parse("2006-01-02", day.Date); err == nil {
			name = t.Format("Monday")
		}
		parts = append(parts, fmt.Sprintf("%s: %s, High %.1f°C, Low %.1f°C",
			name, day.Condition, day.MaxTempC, day.MinTempC))
	}
	return "Weather Forecast:\n" + strings.Join(parts, "\n"), nil
}

func (s *ServiceImpl) geocode(ctx context.Context, destination string) (float64, float64, error) {
	params := url.Values{}
	params.Set("q", destination)
	params.Set("limit", "1")
	params.Set("appid", s.apiKey)

	var results []struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	}
	if err := s.getJSON(ctx, s.baseURL+"/geo/1.0/direct?"+params.Encode(), &results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("no geocoding results for %q", destination)
	}
	return results[0].Lat, results[0].Lon, nil
}

func (s *ServiceImpl) getJSON(ctx context.Context, rawURL string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("openweather returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

// aggregateForecast folds 3-hourly entries into per-day min/max/avg and
// the dominant condition.
func aggregateForecast(location string, entries []forecastEntry) *types.WeatherForecast {
	type dayAccum struct {
		temps      []float64
		conditions map[string]int
		humidity   int
		windSpeed  float64
		samples    int
	}

	byDate := make(map[string]*dayAccum)
	for _, entry := range entries {
		date := time.Unix(entry.Dt, 0).UTC().Format("2006-01-02")
		acc, ok := byDate[date]
		if !ok {
			acc = &dayAccum{conditions: make(map[string]int)}
			byDate[date] = acc
		}
		acc.temps = append(acc.temps, entry.Main.Temp)
		if len(entry.Weather) > 0 {
			acc.conditions[entry.Weather[0].Description]++
		}
		acc.humidity += entry.Main.Humidity
		acc.windSpeed += entry.Wind.Speed
		acc.samples++
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	forecast := &types.WeatherForecast{Location: location}
	for _, date := range dates {
		acc := byDate[date]
		if acc.samples == 0 {
			continue
		}
		minTemp, maxTemp, sum := acc.temps[0], acc.temps[0], 0.0
		for _, t := range acc.temps {
			if t < minTemp {
				minTemp = t
			}
			if t > maxTemp {
				maxTemp = t
			}
			sum += t
		}
		dominant, best := "", 0
		for condition, count := range acc.conditions {
			if count > best || (count == best && condition < dominant) {
				dominant, best = condition, count
			}
		}
		forecast.Forecasts = append(forecast.Forecasts, types.DailyForecast{
			Date:      date,
			AvgTempC:  round1(sum / float64(len(acc.temps))),
			MinTempC:  round1(minTemp),
			MaxTempC:  round1(maxTemp),
			Condition: dominant,
			Humidity:  acc.humidity / acc.samples,
			WindSpeed: round1(acc.windSpeed / float64(acc.samples)),
		})
	}
	return forecast
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
