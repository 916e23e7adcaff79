package service

import (
	"context"
	"errors"

	"gameadvisor/internal/http-api/models"
	"gameadvisor/internal/http-api/repository"

	"github.com/shopspring/decimal"
)

var (
	ErrGameNotFound  = errors.New("game not found")
	ErrInvalidStatus = errors.New("invalid library status")
	ErrInvalidRating = errors.New("rating must be between 0 and 10")
)

// GameGetter is the slice of the game repository the library needs.
type GameGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Game, error)
}

type LibraryService interface {
	Set(ctx context.Context, entry *models.UserGame) error
	Remove(ctx context.Context, userID string, gameID int64) error
	List(ctx context.Context, userID string) ([]models.UserGame, error)
}

type libraryService struct {
	repo  repository.LibraryRepository
	games GameGetter
}

func NewLibraryService(repo repository.LibraryRepository, games GameGetter) LibraryService {
	return &libraryService{repo: repo, games: games}
}

// Set adds a game to the user's library or updates the existing entry in
// place. Status defaults to owned; negative playtime is clamped to zero.
func (s *libraryService) Set(ctx context.Context, entry *models.UserGame) error {
	if _, err := s.games.GetByID(ctx, entry.GameID); err != nil {
		return ErrGameNotFound
	}

	if entry.Status == "" {
		entry.Status = models.StatusOwned
	}
	if !models.ValidStatus(entry.Status) {
		return ErrInvalidStatus
	}
	if entry.Rating != nil && (*entry.Rating < 0 || *entry.Rating > 10) {
		return ErrInvalidRating
	}
	if entry.PlaytimeHours.IsNegative() {
		entry.PlaytimeHours = decimal.Zero
	}

	return s.repo.Set(ctx, entry)
}

func (s *libraryService) Remove(ctx context.Context, userID string, gameID int64) error {
	return s.repo.Remove(ctx, userID, gameID)
}

func (s *libraryService) List(ctx context.Context, userID string) ([]models.UserGame, error) {
	return s.repo.List(ctx, userID)
}
