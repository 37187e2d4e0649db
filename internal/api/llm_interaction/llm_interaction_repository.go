package llmInteraction

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	database "travel-companion/app/db"
	"travel-companion/internal/types"
)

var _ Repository = (*PostgresLlmInteractionRepo)(nil)

// Repository records every round trip to the generative model.
type Repository interface {
	SaveInteraction(ctx context.Context, interaction types.LlmInteraction) (uuid.UUID, error)
}

type PostgresLlmInteractionRepo struct {
	logger *slog.Logger
	pgpool database.DBTX
}

func NewPostgresLlmInteractionRepo(pgpool database.DBTX, logger *slog.Logger) *PostgresLlmInteractionRepo {
	return &PostgresLlmInteractionRepo{
		logger: logger,
		pgpool: pgpool,
	}
}

func (r *PostgresLlmInteractionRepo) SaveInteraction(ctx context.Context, interaction types.LlmInteraction) (uuid.UUID, error) {
	query := `
        INSERT INTO llm_interactions (
            prompt, response_text, model_used, latency_ms, destination
        ) VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	var id uuid.UUID
	err := r.pgpool.QueryRow(ctx, query,
		interaction.Prompt, interaction.ResponseText,
		interaction.ModelUsed, interaction.LatencyMs, interaction.Destination,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
