package steam

import (
	"context"
	"strings"

	"gameadvisor/internal/http-api/models"
)

// GameUpserter is the slice of the game repository the sync needs.
type GameUpserter interface {
	Upsert(ctx context.Context, game *models.Game) (int64, error)
}

// CatalogStore adapts canonical ingestion records onto the GORM-backed game
// repository, satisfying GameStore.
type CatalogStore struct {
	games GameUpserter
}

func NewCatalogStore(games GameUpserter) *CatalogStore {
	return &CatalogStore{games: games}
}

func (s *CatalogStore) UpsertGame(ctx context.Context, record *GameRecord) (int64, error) {
	game := &models.Game{
		SteamAppID:  record.SteamAppID,
		Name:        record.Name,
		Description: record.Description,
		Genres:      record.Genres,
		AgeRating:   record.AgeRating,
		Price:       record.Price,
		Platforms:   strings.Join(record.Platforms, ", "),
		Popularity:  record.Popularity,
		ReleaseDate: record.ReleaseDate,
	}

	for _, req := range record.Requirements {
		game.Requirements = append(game.Requirements, models.GameRequirement{
			Platform:    req.Platform,
			Minimum:     req.Minimum,
			Recommended: req.Recommended,
		})
	}

	return s.games.Upsert(ctx, game)
}
