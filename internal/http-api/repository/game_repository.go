package repository

import (
	"context"
	"errors"
	"fmt"

	"gameadvisor/internal/http-api/models"

	"gorm.io/gorm"
)

type GameRepo struct {
	db *gorm.DB
}

func NewGameRepo(db *gorm.DB) *GameRepo {
	return &GameRepo{db: db}
}

// Upsert stores a game and its requirements in one transaction: both succeed
// or neither does. Games carrying a steam_appid are keyed on it, so repeated
// ingestion updates in place; games without one are always inserted. Existing
// requirement rows are replaced, which keeps the one-row-per-platform rule.
func (r *GameRepo) Upsert(ctx context.Context, game *models.Game) (int64, error) {
	requirements := game.Requirements
	game.Requirements = nil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if game.SteamAppID != nil {
			var existing models.Game
			err := tx.Where("steam_app_id = ?", *game.SteamAppID).First(&existing).Error
			switch {
			case err == nil:
				game.ID = existing.ID
				game.CreatedAt = existing.CreatedAt
				if err := tx.Model(&models.Game{}).Where("id = ?", existing.ID).
					Select("SteamAppID", "Name", "Description", "Genres", "AgeRating",
						"Price", "Platforms", "Popularity", "ReleaseDate").
					Updates(game).Error; err != nil {
					return fmt.Errorf("update game: %w", err)
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Create(game).Error; err != nil {
					return fmt.Errorf("create game: %w", err)
				}
			default:
				return fmt.Errorf("lookup game: %w", err)
			}
		} else {
			if err := tx.Create(game).Error; err != nil {
				return fmt.Errorf("create game: %w", err)
			}
		}

		if err := tx.Where("game_id = ?", game.ID).
			Delete(&models.GameRequirement{}).Error; err != nil {
			return fmt.Errorf("clear requirements: %w", err)
		}
		for i := range requirements {
			requirements[i].ID = 0
			requirements[i].GameID = game.ID
			if err := tx.Create(&requirements[i]).Error; err != nil {
				return fmt.Errorf("create requirement: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, &PersistError{Op: "game", Err: err}
	}

	game.Requirements = requirements
	return game.ID, nil
}

func (r *GameRepo) GetByID(ctx context.Context, id int64) (*models.Game, error) {
	var game models.Game
	if err := r.db.WithContext(ctx).Preload("Requirements").First(&game, id).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

// ListCatalog returns the full catalog in stable id order, so two
// recommendation runs over unchanged data see the same sequence.
func (r *GameRepo) ListCatalog(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	if err := r.db.WithContext(ctx).Order("id").Find(&games).Error; err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	return games, nil
}

func (r *GameRepo) GetAll(ctx context.Context, page, pageSize int) ([]models.Game, int64, error) {
	var list []models.Game
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Game{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize

	if err := r.db.WithContext(ctx).
		Preload("Requirements").
		Order("id").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *GameRepo) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Game{}, id).Error; err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	return nil
}
