package itinerary

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"travel-companion/internal/types"
)

// MockAIClient is a mock implementation of generativeAI.Client.
type MockAIClient struct {
	mock.Mock
}

func (m *MockAIClient) GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	args := m.Called(ctx, prompt, config)
	return args.String(0), args.Error(1)
}

func (m *MockAIClient) Model() string {
	return "gemini-2.0-flash"
}

// MockItineraryRepo is a mock implementation of Repository.
type MockItineraryRepo struct {
	mock.Mock
}

func (m *MockItineraryRepo) SaveItinerary(ctx context.Context, req types.TripRequest, itin types.ItineraryResponse) (uuid.UUID, error) {
	args := m.Called(ctx, req, itin)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockItineraryRepo) GetItinerary(ctx context.Context, id uuid.UUID) (*types.SavedItinerary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.SavedItinerary), args.Error(1)
}

func (m *MockItineraryRepo) ListItineraries(ctx context.Context, limit, offset int) ([]types.SavedItinerary, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.SavedItinerary), args.Error(1)
}

// MockInteractionRepo is a mock implementation of llmInteraction.Repository.
type MockInteractionRepo struct {
	mock.Mock
}

func (m *MockInteractionRepo) SaveInteraction(ctx context.Context, interaction types.LlmInteraction) (uuid.UUID, error) {
	args := m.Called(ctx, interaction)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// MockWeatherProvider is a mock implementation of WeatherProvider.
type MockWeatherProvider struct {
	mock.Mock
}

func (m *MockWeatherProvider) Summary(ctx context.Context, destination string) (string, error) {
	args := m.Called(ctx, destination)
	return args.String(0), args.Error(1)
}

func newTestService(ai *MockAIClient, repo *MockItineraryRepo, interactions *MockInteractionRepo) *ServiceImpl {
	return NewServiceImpl(ai, repo, interactions, nil, nil, slog.Default())
}

func TestGenerateItinerary_Success(t *testing.T) {
	mockAI := new(MockAIClient)
	mockRepo := new(MockItineraryRepo)
	mockInteractions := new(MockInteractionRepo)
	service := newTestService(mockAI, mockRepo, mockInteractions)

	req := validTripRequest()
	raw := "Day 1: Temples\n- Morning: Fushimi Inari at sunrise\nDay 2: Food\n- Nishiki Market tasting walk"
	savedID := uuid.New()

	mockAI.On("GenerateContent", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Kyoto, Japan")
	}), (*genai.GenerateContentConfig)(nil)).Return(raw, nil)
	mockInteractions.On("SaveInteraction", mock.Anything, mock.AnythingOfType("types.LlmInteraction")).Return(uuid.New(), nil)
	mockRepo.On("SaveItinerary", mock.Anything, req, mock.AnythingOfType("types.ItineraryResponse")).Return(savedID, nil)

	itin, err := service.GenerateItinerary(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, itin)
	assert.Equal(t, savedID, itin.ID)
	assert.Len(t, itin.Days, 2)
	assert.Equal(t, "gemini-2.0-flash", itin.ModelUsed)
	mockAI.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
	mockInteractions.AssertExpectations(t)
}

func TestGenerateItinerary_MissingDestinationSkipsModelCall(t *testing.T) {
	mockAI := new(MockAIClient)
	mockRepo := new(MockItineraryRepo)
	mockInteractions := new(MockInteractionRepo)
	service := newTestService(mockAI, mockRepo, mockInteractions)

	req := validTripRequest()
	req.Destination = ""

	itin, err := service.GenerateItinerary(context.Background(), req)

	assert.Nil(t, itin)
	assert.ErrorIs(t, err, types.ErrValidation)
	mockAI.AssertNotCalled(t, "GenerateContent", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateItinerary_GenerationFailure(t *testing.T) {
	mockAI := new(MockAIClient)
	mockRepo := new(MockItineraryRepo)
	mockInteractions := new(MockInteractionRepo)
	service := newTestService(mockAI, mockRepo, mockInteractions)

	mockAI.On("GenerateContent", mock.Anything, mock.Anything, (*genai.GenerateContentConfig)(nil)).
		Return("", types.ErrGenerationFailed)

	itin, err := service.GenerateItinerary(context.Background(), validTripRequest())

	assert.Nil(t, itin)
	assert.ErrorIs(t, err, types.ErrGenerationFailed)
	mockRepo.AssertNotCalled(t, "SaveItinerary", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateItinerary_InteractionSaveFailureIsNonFatal(t *testing.T) {
	mockAI := new(MockAIClient)
	mockRepo := new(MockItineraryRepo)
	mockInteractions := new(MockInteractionRepo)
	service := newTestService(mockAI, mockRepo, mockInteractions)

	req := validTripRequest()
	savedID := uuid.New()

	mockAI.On("GenerateContent", mock.Anything, mock.Anything, (*genai.GenerateContentConfig)(nil)).
		Return("Day 1\n- Morning: Explore the old town", nil)
	mockInteractions.On("SaveInteraction", mock.Anything, mock.Anything).
		Return(uuid.Nil, errors.New("db down"))
	mockRepo.On("SaveItinerary", mock.Anything, req, mock.Anything).Return(savedID, nil)

	itin, err := service.GenerateItinerary(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, savedID, itin.ID)
}

func TestGenerateItinerary_WeatherFailureIsNonFatal(t *testing.T) {
	mockAI := new(MockAIClient)
	mockRepo := new(MockItineraryRepo)
	mockInteractions := new(MockInteractionRepo)

	weather := new(MockWeatherProvider)
	weather.On("Summary", mock.Anything, "Kyoto, Japan").Return("", errors.New("service down"))

	service := NewServiceImpl(mockAI, mockRepo, mockInteractions, weather, nil, slog.Default())

	req := validTripRequest()
	mockAI.On("GenerateContent", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return !strings.Contains(prompt, "Weather Information")
	}), (*genai.GenerateContentConfig)(nil)).
		Return("Day 1\n- Morning: Arrive and settle in", nil)
	mockInteractions.On("SaveInteraction", mock.Anything, mock.Anything).Return(uuid.New(), nil)
	mockRepo.On("SaveItinerary", mock.Anything, req, mock.Anything).Return(uuid.New(), nil)

	_, err := service.GenerateItinerary(context.Background(), req)
	require.NoError(t, err)
	weather.AssertExpectations(t)
	mockAI.AssertExpectations(t)
}

func TestListItineraries_ClampsPaging(t *testing.T) {
	mockAI := new(MockAIClient)
	mockRepo := new(MockItineraryRepo)
	mockInteractions := new(MockInteractionRepo)
	service := newTestService(mockAI, mockRepo, mockInteractions)

	mockRepo.On("ListItineraries", mock.Anything, 20, 0).Return([]types.SavedItinerary{}, nil)

	_, err := service.ListItineraries(context.Background(), -5, -1)
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
