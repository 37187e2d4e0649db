package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"travel-companion/app/observability/metrics"
	"travel-companion/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service resolves free-text location names into coordinates and builds
// the marker list the map collaborator consumes.
type Service interface {
	Geocode(ctx context.Context, location string) (lat, lon float64, err error)
	MapPoints(ctx context.Context, destination, itineraryText string) []types.MapPoint
}

// Fallback coordinates for major cities when Nominatim has no answer.
var fallbackCoords = map[string][2]float64{
	"paris":     {48.8566, 2.3522},
	"london":    {51.5074, -0.1278},
	"new york":  {40.7128, -74.0060},
	"tokyo":     {35.6762, 139.6503},
	"rome":      {41.9028, 12.4964},
	"barcelona": {41.3851, 2.1734},
}

// markerLimit caps how many extracted locations get geocoded per map,
// keeping the request inside Nominatim's fair-use expectations.
const markerLimit = 10

type ServiceImpl struct {
	logger     *slog.Logger
	httpClient *http.Client
	baseURL    string
	userAgent  string
	cache      *cache.Cache
}

func NewServiceImpl(baseURL, userAgent string, cacheTTL time.Duration, logger *slog.Logger) *ServiceImpl {
	if cacheTTL <= 0 {
		cacheTTL = 12 * time.Hour
	}
	return &ServiceImpl{
		logger:     logger,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		cache:      cache.New(cacheTTL, 2*cacheTTL),
	}
}

// Geocode resolves a location through Nominatim, falling back to the
// static table for well-known cities.
func (s *ServiceImpl) Geocode(ctx context.Context, location string) (float64, float64, error) {
	ctx, span := otel.Tracer("GeocodeService").Start(ctx, "Geocode")
	defer span.End()
	span.SetAttributes(attribute.String("geocode.location", location))

	cacheKey := geocodeCacheKey(location)
	if cached, found := s.cache.Get(cacheKey); found {
		if coords, ok := cached.([2]float64); ok {
			if m := metrics.Get(); m != nil {
				m.GeocodeCacheHitsTotal.Add(ctx, 1)
			}
			return coords[0], coords[1], nil
		}
	}

	lat, lon, err := s.lookupNominatim(ctx, location)
	if err != nil {
		s.logger.WarnContext(ctx, "Nominatim lookup failed, trying fallback table",
			slog.String("location", location), slog.Any("error", err))
		lower := strings.ToLower(location)
		for city, coords := range fallbackCoords {
			if strings.Contains(lower, city) {
				s.cache.Set(cacheKey, coords, cache.DefaultExpiration)
				return coords[0], coords[1], nil
			}
		}
		return 0, 0, fmt.Errorf("failed to geocode %q: %w", location, err)
	}

	s.cache.Set(cacheKey, [2]float64{lat, lon}, cache.DefaultExpiration)
	return lat, lon, nil
}

func (s *ServiceImpl) lookupNominatim(ctx context.Context, location string) (float64, float64, error) {
	params := url.Values{}
	params.Set("q", location)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return 0, 0, err
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("nominatim returned status %d", resp.StatusCode)
	}

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return 0, 0, fmt.Errorf("failed to decode nominatim response: %w", err)
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("no results for %q", location)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad latitude in nominatim response: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad longitude in nominatim response: %w", err)
	}
	return lat, lon, nil
}

// MapPoints geocodes the destination plus the locations mentioned in an
// itinerary. Locations that fail to resolve are skipped; the map is a
// best-effort artifact and never blocks the caller.
func (s *ServiceImpl) MapPoints(ctx context.Context, destination, itineraryText string) []types.MapPoint {
	ctx, span := otel.Tracer("GeocodeService").Start(ctx, "MapPoints")
	defer span.End()

	var points []types.MapPoint
	if lat, lon, err := s.Geocode(ctx, destination); err == nil {
		points = append(points, types.MapPoint{Latitude: lat, Longitude: lon, Label: destination})
	}

	locations := ExtractLocations(itineraryText)
	if len(locations) > markerLimit {
		locations = locations[:markerLimit]
	}
	for _, loc := range locations {
		lat, lon, err := s.Geocode(ctx, loc+", "+destination)
		if err != nil {
			s.logger.DebugContext(ctx, "skipping unresolvable location",
				slog.String("location", loc), slog.Any("error", err))
			continue
		}
		points = append(points, types.MapPoint{Latitude: lat, Longitude: lon, Label: loc})
	}
	return points
}

func geocodeCacheKey(location string) string {
	return "geocode:" + strings.ToLower(strings.TrimSpace(location))
}
