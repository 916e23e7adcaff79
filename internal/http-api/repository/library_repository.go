package repository

import (
	"context"
	"errors"
	"fmt"

	"gameadvisor/internal/http-api/models"

	"gorm.io/gorm"
)

var ErrNotInLibrary = errors.New("game not in library")

type LibraryRepository interface {
	Set(ctx context.Context, entry *models.UserGame) error
	Remove(ctx context.Context, userID string, gameID int64) error
	List(ctx context.Context, userID string) ([]models.UserGame, error)
	OwnedGameIDs(ctx context.Context, userID string) (map[int64]struct{}, error)
}

type libraryRepository struct {
	db *gorm.DB
}

func NewLibraryRepository(db *gorm.DB) LibraryRepository {
	return &libraryRepository{db: db}
}

// Set inserts a library entry or updates the existing (user, game) row in
// place. A repeated add never duplicates.
func (r *libraryRepository) Set(ctx context.Context, entry *models.UserGame) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.UserGame
		err := tx.Where("user_id = ? AND game_id = ?", entry.UserID, entry.GameID).
			First(&existing).Error
		switch {
		case err == nil:
			return tx.Model(&models.UserGame{}).
				Where("user_id = ? AND game_id = ?", entry.UserID, entry.GameID).
				Updates(map[string]any{
					"status":         entry.Status,
					"rating":         entry.Rating,
					"playtime_hours": entry.PlaytimeHours,
				}).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(entry).Error
		default:
			return err
		}
	})
	if err != nil {
		return &PersistError{Op: "library entry", Err: err}
	}
	return nil
}

func (r *libraryRepository) Remove(ctx context.Context, userID string, gameID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Delete(&models.UserGame{})

	if result.Error != nil {
		return fmt.Errorf("remove from library: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotInLibrary
	}
	return nil
}

func (r *libraryRepository) List(ctx context.Context, userID string) ([]models.UserGame, error) {
	var library []models.UserGame
	if err := r.db.WithContext(ctx).
		Preload("Game").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&library).Error; err != nil {
		return nil, fmt.Errorf("list library: %w", err)
	}
	return library, nil
}

// OwnedGameIDs returns the ids of every game in the user's library,
// regardless of status. Used to exclude already-known games from
// recommendations.
func (r *libraryRepository) OwnedGameIDs(ctx context.Context, userID string) (map[int64]struct{}, error) {
	var ids []int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserGame{}).
		Where("user_id = ?", userID).
		Pluck("game_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("owned game ids: %w", err)
	}

	owned := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		owned[id] = struct{}{}
	}
	return owned, nil
}
