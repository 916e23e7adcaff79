package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Game is the canonical catalog record every ingested payload converges to.
type Game struct {
	ID          int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	SteamAppID  *int64          `json:"steam_appid,omitempty" gorm:"index"`
	Name        string          `json:"name" gorm:"size:200;not null;index"`
	Description string          `json:"description" gorm:"type:text;not null;default:''"`
	Genres      string          `json:"genres" gorm:"not null;default:''"`
	AgeRating   int             `json:"age_rating" gorm:"column:usk;not null;default:0"`
	Price       decimal.Decimal `json:"price" gorm:"type:numeric(10,2);not null;default:0"`
	Platforms   string          `json:"platforms" gorm:"not null;default:''"`
	Popularity  int             `json:"popularity" gorm:"not null;default:0"`
	ReleaseDate string          `json:"release_date" gorm:"size:40;not null;default:''"`
	CreatedAt   time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `json:"updated_at" gorm:"autoUpdateTime"`

	// association
	Requirements []GameRequirement `json:"requirements,omitempty" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
}

func (Game) TableName() string {
	return "games"
}
