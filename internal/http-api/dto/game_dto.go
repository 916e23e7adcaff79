package dto

import (
	"gameadvisor/internal/http-api/models"

	"github.com/shopspring/decimal"
)

// RequirementResponse: per-platform system requirements of a game.
type RequirementResponse struct {
	Platform    string  `json:"platform"`
	Minimum     string  `json:"minimum"`
	Recommended *string `json:"recommended,omitempty"`
}

// GameResponse: catalog view of a game.
type GameResponse struct {
	ID           int64                 `json:"id"`
	SteamAppID   *int64                `json:"steam_appid,omitempty"`
	Name         string                `json:"name"`
	Description  string                `json:"description,omitempty"`
	Genres       string                `json:"genres,omitempty"`
	AgeRating    int                   `json:"age_rating"`
	Price        decimal.Decimal       `json:"price"`
	Platforms    string                `json:"platforms,omitempty"`
	Popularity   int                   `json:"popularity"`
	ReleaseDate  string                `json:"release_date,omitempty"`
	Requirements []RequirementResponse `json:"requirements,omitempty"`
}

// GameListResponse: paginated catalog listing.
type GameListResponse struct {
	Items    []GameResponse `json:"items"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// FromGameModel maps a game model to its response DTO.
func FromGameModel(game models.Game) GameResponse {
	resp := GameResponse{
		ID:          game.ID,
		SteamAppID:  game.SteamAppID,
		Name:        game.Name,
		Description: game.Description,
		Genres:      game.Genres,
		AgeRating:   game.AgeRating,
		Price:       game.Price,
		Platforms:   game.Platforms,
		Popularity:  game.Popularity,
		ReleaseDate: game.ReleaseDate,
	}
	for _, req := range game.Requirements {
		resp.Requirements = append(resp.Requirements, RequirementResponse{
			Platform:    req.Platform,
			Minimum:     req.Minimum,
			Recommended: req.Recommended,
		})
	}
	return resp
}
