package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Library entry statuses.
const (
	StatusOwned     = "owned"
	StatusWishlist  = "wishlist"
	StatusPlaying   = "playing"
	StatusCompleted = "completed"
)

// ValidStatus reports whether s is one of the library statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusOwned, StatusWishlist, StatusPlaying, StatusCompleted:
		return true
	}
	return false
}

// UserGame relates a user to a game in their library. One row per
// (user, game); a repeated add updates the row in place.
type UserGame struct {
	UserID        string          `json:"user_id" gorm:"primaryKey;type:uuid"`
	GameID        int64           `json:"game_id" gorm:"primaryKey"`
	Status        string          `json:"status" gorm:"size:20;not null;default:'owned'"`
	Rating        *int            `json:"rating,omitempty"`
	PlaytimeHours decimal.Decimal `json:"playtime_hours" gorm:"type:numeric(8,1);not null;default:0"`
	CreatedAt     time.Time       `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Game *Game `json:"game,omitempty" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
}

func (UserGame) TableName() string {
	return "user_games"
}
