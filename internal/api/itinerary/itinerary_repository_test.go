package itinerary

import (
	"context"
	"encoding/json"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-companion/internal/types"
)

func setupRepo(t *testing.T) (*PostgresItineraryRepo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := NewPostgresItineraryRepo(mock, slog.Default())
	return repo, mock
}

func itineraryColumns() []string {
	return []string{
		"id", "destination", "start_date", "end_date", "budget", "traveler_type",
		"interests", "days", "raw_text", "warnings", "model_used", "created_at",
	}
}

func sampleSavedItinerary() types.SavedItinerary {
	return types.SavedItinerary{
		ID: uuid.New(),
		Request: types.TripRequest{
			Destination:  "Kyoto, Japan",
			StartDate:    time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			EndDate:      time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
			Budget:       types.BudgetTierMidRange,
			TravelerType: types.TravelerCouple,
			Interests:    []string{"food", "history"},
		},
		Itinerary: types.ItineraryResponse{
			Days: []types.DayPlan{
				{Day: 1, Title: "Temples", Activities: []types.Activity{
					{TimeOfDay: types.TimeOfDayMorning, Description: "Fushimi Inari at sunrise"},
				}},
			},
			RawText:   "Day 1: Temples\n- Morning: Fushimi Inari at sunrise",
			Warnings:  []string{},
			ModelUsed: "gemini-2.0-flash",
		},
		CreatedAt: time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC),
	}
}

func itineraryRow(s types.SavedItinerary) *pgxmock.Rows {
	daysJSON, _ := json.Marshal(s.Itinerary.Days)
	return pgxmock.NewRows(itineraryColumns()).AddRow(
		s.ID, s.Request.Destination, s.Request.StartDate, s.Request.EndDate,
		s.Request.Budget, s.Request.TravelerType, s.Request.Interests,
		daysJSON, s.Itinerary.RawText, s.Itinerary.Warnings,
		s.Itinerary.ModelUsed, s.CreatedAt,
	)
}

func TestSaveItinerary(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	s := sampleSavedItinerary()
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO itineraries")).
		WithArgs(
			s.Request.Destination, s.Request.StartDate, s.Request.EndDate,
			s.Request.Budget, s.Request.TravelerType, s.Request.Interests,
			pgxmock.AnyArg(), s.Itinerary.RawText, s.Itinerary.Warnings,
			s.Itinerary.ModelUsed,
		).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))

	got, err := repo.SaveItinerary(context.Background(), s.Request, s.Itinerary)

	require.NoError(t, err)
	assert.Equal(t, id, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetItinerary(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	s := sampleSavedItinerary()

	mock.ExpectQuery(regexp.QuoteMeta("FROM itineraries")).
		WithArgs(s.ID).
		WillReturnRows(itineraryRow(s))

	got, err := repo.GetItinerary(context.Background(), s.ID)

	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, "Kyoto, Japan", got.Request.Destination)
	assert.Len(t, got.Itinerary.Days, 1)
	assert.Equal(t, s.ID, got.Itinerary.ID)
	assert.Equal(t, "Kyoto, Japan", got.Itinerary.Destination)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetItinerary_NotFound(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM itineraries")).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.GetItinerary(context.Background(), id)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListItineraries(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	s := sampleSavedItinerary()
	daysJSON, _ := json.Marshal(s.Itinerary.Days)
	rows := pgxmock.NewRows(itineraryColumns()).
		AddRow(
			s.ID, s.Request.Destination, s.Request.StartDate, s.Request.EndDate,
			s.Request.Budget, s.Request.TravelerType, s.Request.Interests,
			daysJSON, s.Itinerary.RawText, s.Itinerary.Warnings,
			s.Itinerary.ModelUsed, s.CreatedAt,
		).
		AddRow(
			uuid.New(), "Lisbon, Portugal", s.Request.StartDate, s.Request.EndDate,
			types.BudgetTierBudget, types.TravelerSolo, []string{"nightlife"},
			daysJSON, "raw", []string{}, "gemini-2.0-flash", s.CreatedAt,
		)

	mock.ExpectQuery(regexp.QuoteMeta("FROM itineraries")).
		WithArgs(20, 0).
		WillReturnRows(rows)

	got, err := repo.ListItineraries(context.Background(), 20, 0)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Kyoto, Japan", got[0].Request.Destination)
	assert.Equal(t, "Lisbon, Portugal", got[1].Request.Destination)
	assert.NoError(t, mock.ExpectationsWereMet())
}
