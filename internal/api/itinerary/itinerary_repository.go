package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	database "travel-companion/app/db"
	"travel-companion/internal/types"
)

var _ Repository = (*PostgresItineraryRepo)(nil)

// Repository persists generated itineraries.
type Repository interface {
	SaveItinerary(ctx context.Context, req types.TripRequest, itin types.ItineraryResponse) (uuid.UUID, error)
	GetItinerary(ctx context.Context, id uuid.UUID) (*types.SavedItinerary, error)
	ListItineraries(ctx context.Context, limit, offset int) ([]types.SavedItinerary, error)
}

type PostgresItineraryRepo struct {
	logger *slog.Logger
	pgpool database.DBTX
}

func NewPostgresItineraryRepo(pgpool database.DBTX, logger *slog.Logger) *PostgresItineraryRepo {
	return &PostgresItineraryRepo{
		logger: logger,
		pgpool: pgpool,
	}
}

func (r *PostgresItineraryRepo) SaveItinerary(ctx context.Context, req types.TripRequest, itin types.ItineraryResponse) (uuid.UUID, error) {
	daysJSON, err := json.Marshal(itin.Days)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal day plans: %w", err)
	}

	query := `
        INSERT INTO itineraries (
            destination, start_date, end_date, budget, traveler_type,
            interests, days, raw_text, warnings, model_used
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id
    `
	var id uuid.UUID
	err = r.pgpool.QueryRow(ctx, query,
		req.Destination, req.StartDate, req.EndDate, req.Budget, req.TravelerType,
		req.Interests, daysJSON, itin.RawText, itin.Warnings, itin.ModelUsed,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert itinerary: %w", err)
	}
	return id, nil
}

func (r *PostgresItineraryRepo) GetItinerary(ctx context.Context, id uuid.UUID) (*types.SavedItinerary, error) {
	query := `
        SELECT id, destination, start_date, end_date, budget, traveler_type,
               interests, days, raw_text, warnings, model_used, created_at
        FROM itineraries
        WHERE id = $1
    `
	saved, err := scanItinerary(r.pgpool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: itinerary %s", types.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to fetch itinerary: %w", err)
	}
	return saved, nil
}

func (r *PostgresItineraryRepo) ListItineraries(ctx context.Context, limit, offset int) ([]types.SavedItinerary, error) {
	query := `
        SELECT id, destination, start_date, end_date, budget, traveler_type,
               interests, days, raw_text, warnings, model_used, created_at
        FROM itineraries
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `
	rows, err := r.pgpool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list itineraries: %w", err)
	}
	defer rows.Close()

	var out []types.SavedItinerary
	for rows.Next() {
		saved, err := scanItinerary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan itinerary row: %w", err)
		}
		out = append(out, *saved)
	}
	return out, rows.Err()
}

func scanItinerary(row pgx.Row) (*types.SavedItinerary, error) {
	var saved types.SavedItinerary
	var daysJSON []byte
	err := row.Scan(
		&saved.ID,
		&saved.Request.Destination, &saved.Request.StartDate, &saved.Request.EndDate,
		&saved.Request.Budget, &saved.Request.TravelerType, &saved.Request.Interests,
		&daysJSON, &saved.Itinerary.RawText, &saved.Itinerary.Warnings,
		&saved.Itinerary.ModelUsed, &saved.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(daysJSON, &saved.Itinerary.Days); err != nil {
		return nil, fmt.Errorf("failed to unmarshal day plans: %w", err)
	}
	saved.Itinerary.ID = saved.ID
	saved.Itinerary.Destination = saved.Request.Destination
	saved.Itinerary.CreatedAt = saved.CreatedAt
	return &saved, nil
}
