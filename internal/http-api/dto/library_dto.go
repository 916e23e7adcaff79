package dto

import (
	"time"

	"gameadvisor/internal/http-api/models"

	"github.com/shopspring/decimal"
)

// AddToLibraryRequest: payload to add or update a library entry.
// A repeated add for the same game updates the entry in place.
type AddToLibraryRequest struct {
	GameID        int64            `json:"game_id" binding:"required"`
	Status        string           `json:"status"`
	Rating        *int             `json:"rating,omitempty"`
	PlaytimeHours *decimal.Decimal `json:"playtime_hours,omitempty"`
}

// LibraryEntryResponse: one entry of a user's library.
type LibraryEntryResponse struct {
	GameID        int64           `json:"game_id"`
	Status        string          `json:"status"`
	Rating        *int            `json:"rating,omitempty"`
	PlaytimeHours decimal.Decimal `json:"playtime_hours"`
	AddedAt       time.Time       `json:"added_at"`
	Game          *GameResponse   `json:"game,omitempty"`
}

// LibraryListResponse: full library of a user.
type LibraryListResponse struct {
	Items []LibraryEntryResponse `json:"items"`
	Total int                    `json:"total"`
}

// FromLibraryModel maps a library entry model to its response DTO.
func FromLibraryModel(entry models.UserGame) LibraryEntryResponse {
	resp := LibraryEntryResponse{
		GameID:        entry.GameID,
		Status:        entry.Status,
		Rating:        entry.Rating,
		PlaytimeHours: entry.PlaytimeHours,
		AddedAt:       entry.CreatedAt,
	}
	if entry.Game != nil {
		game := FromGameModel(*entry.Game)
		resp.Game = &game
	}
	return resp
}
