package review

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	database "travel-companion/app/db"
	"travel-companion/internal/types"
)

var _ Repository = (*PostgresReviewRepo)(nil)

// Repository persists finished review analyses.
type Repository interface {
	SaveAnalysis(ctx context.Context, sourceText string, analysis types.ReviewAnalysis) (uuid.UUID, error)
}

type PostgresReviewRepo struct {
	logger *slog.Logger
	pgpool database.DBTX
}

func NewPostgresReviewRepo(pgpool database.DBTX, logger *slog.Logger) *PostgresReviewRepo {
	return &PostgresReviewRepo{
		logger: logger,
		pgpool: pgpool,
	}
}

func (r *PostgresReviewRepo) SaveAnalysis(ctx context.Context, sourceText string, analysis types.ReviewAnalysis) (uuid.UUID, error) {
	recordsJSON, err := json.Marshal(analysis.Records)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal review records: %w", err)
	}

	query := `
        INSERT INTO review_analyses (
            source_text, total_reviews, records, insights
        ) VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	var id uuid.UUID
	err = r.pgpool.QueryRow(ctx, query,
		sourceText, analysis.TotalReviews, recordsJSON, analysis.Insights,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert review analysis: %w", err)
	}
	return id, nil
}
