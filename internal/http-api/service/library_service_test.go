package service

import (
	"context"
	"testing"

	"gameadvisor/internal/http-api/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// MockGameGetter mocks the GameGetter interface
type MockGameGetter struct {
	mock.Mock
}

func (m *MockGameGetter) GetByID(ctx context.Context, id int64) (*models.Game, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Game), args.Error(1)
}

func TestLibrarySet_Success(t *testing.T) {
	mockRepo := new(MockLibraryRepository)
	mockGames := new(MockGameGetter)
	service := NewLibraryService(mockRepo, mockGames)

	mockGames.On("GetByID", mock.Anything, int64(7)).Return(&models.Game{ID: 7}, nil)
	mockRepo.On("Set", mock.Anything, mock.AnythingOfType("*models.UserGame")).Return(nil)

	entry := &models.UserGame{UserID: "user-1", GameID: 7, Status: models.StatusPlaying}
	err := service.Set(context.Background(), entry)

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockGames.AssertExpectations(t)
}

func TestLibrarySet_DefaultsStatusToOwned(t *testing.T) {
	mockRepo := new(MockLibraryRepository)
	mockGames := new(MockGameGetter)
	service := NewLibraryService(mockRepo, mockGames)

	mockGames.On("GetByID", mock.Anything, int64(7)).Return(&models.Game{ID: 7}, nil)
	mockRepo.On("Set", mock.Anything, mock.Anything).Return(nil)

	entry := &models.UserGame{UserID: "user-1", GameID: 7}
	err := service.Set(context.Background(), entry)

	require.NoError(t, err)
	assert.Equal(t, models.StatusOwned, entry.Status)
}

func TestLibrarySet_UnknownGame(t *testing.T) {
	mockRepo := new(MockLibraryRepository)
	mockGames := new(MockGameGetter)
	service := NewLibraryService(mockRepo, mockGames)

	mockGames.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	err := service.Set(context.Background(), &models.UserGame{UserID: "user-1", GameID: 404})

	assert.Equal(t, ErrGameNotFound, err)
	mockRepo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestLibrarySet_InvalidStatus(t *testing.T) {
	mockRepo := new(MockLibraryRepository)
	mockGames := new(MockGameGetter)
	service := NewLibraryService(mockRepo, mockGames)

	mockGames.On("GetByID", mock.Anything, int64(7)).Return(&models.Game{ID: 7}, nil)

	entry := &models.UserGame{UserID: "user-1", GameID: 7, Status: "borrowed"}
	err := service.Set(context.Background(), entry)

	assert.Equal(t, ErrInvalidStatus, err)
	mockRepo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestLibrarySet_InvalidRating(t *testing.T) {
	mockRepo := new(MockLibraryRepository)
	mockGames := new(MockGameGetter)
	service := NewLibraryService(mockRepo, mockGames)

	mockGames.On("GetByID", mock.Anything, int64(7)).Return(&models.Game{ID: 7}, nil)

	for _, rating := range []int{-1, 11} {
		rating := rating
		entry := &models.UserGame{UserID: "user-1", GameID: 7, Rating: &rating}
		err := service.Set(context.Background(), entry)
		assert.Equal(t, ErrInvalidRating, err)
	}
	mockRepo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestLibrarySet_ClampsNegativePlaytime(t *testing.T) {
	mockRepo := new(MockLibraryRepository)
	mockGames := new(MockGameGetter)
	service := NewLibraryService(mockRepo, mockGames)

	mockGames.On("GetByID", mock.Anything, int64(7)).Return(&models.Game{ID: 7}, nil)
	mockRepo.On("Set", mock.Anything, mock.Anything).Return(nil)

	entry := &models.UserGame{
		UserID:        "user-1",
		GameID:        7,
		PlaytimeHours: decimal.NewFromFloat(-3.5),
	}
	err := service.Set(context.Background(), entry)

	require.NoError(t, err)
	assert.True(t, entry.PlaytimeHours.Equal(decimal.Zero))
}

func TestLibraryList_DelegatesToRepo(t *testing.T) {
	mockRepo := new(MockLibraryRepository)
	service := NewLibraryService(mockRepo, new(MockGameGetter))

	expected := []models.UserGame{{UserID: "user-1", GameID: 1}}
	mockRepo.On("List", mock.Anything, "user-1").Return(expected, nil)

	library, err := service.List(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, expected, library)
}

func TestLibraryRemove_DelegatesToRepo(t *testing.T) {
	mockRepo := new(MockLibraryRepository)
	service := NewLibraryService(mockRepo, new(MockGameGetter))

	mockRepo.On("Remove", mock.Anything, "user-1", int64(7)).Return(nil)

	err := service.Remove(context.Background(), "user-1", 7)

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
